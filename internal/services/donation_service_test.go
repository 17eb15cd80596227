package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"k9hope_backend/internal/models"
	"k9hope_backend/internal/services/dto"
	"k9hope_backend/pkg/apperrors"
)

type fakeDonationRepo struct {
	donations []*models.Donation
}

func (f *fakeDonationRepo) CreateDonation(d *models.Donation) error {
	f.donations = append(f.donations, d)
	return nil
}

func (f *fakeDonationRepo) FindDonorDonations(donorID string) ([]models.Donation, error) {
	var out []models.Donation
	for _, d := range f.donations {
		if d.DonorID == donorID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDonationRepo) CountDonorDonations(donorID string) (int64, error) {
	var count int64
	for _, d := range f.donations {
		if d.DonorID == donorID {
			count++
		}
	}
	return count, nil
}

func (f *fakeDonationRepo) SumDonorVolume(donorID string) (int64, error) {
	var total int64
	for _, d := range f.donations {
		if d.DonorID == donorID {
			total += int64(d.VolumeML)
		}
	}
	return total, nil
}

func TestDonationService_RecordAdvancesCooldownClock(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	addDonor(profileRepo, "donor-1", "DEA 4", "Chennai")
	service := NewDonationService(&fakeDonationRepo{}, profileRepo)

	donatedAt := time.Now().Add(-time.Hour)
	_, err := service.RecordDonation("donor-1", &dto.RecordDonationRequest{DonatedAt: donatedAt})
	require.NoError(t, err)

	require.NotNil(t, profileRepo.donors["donor-1"].LastDonationAt)
	assert.Equal(t, donatedAt, *profileRepo.donors["donor-1"].LastDonationAt)
}

func TestDonationService_BackDatedDonationKeepsCooldownClock(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	addDonor(profileRepo, "donor-1", "DEA 4", "Chennai")
	repo := &fakeDonationRepo{}
	service := NewDonationService(repo, profileRepo)

	recent := time.Now().Add(-24 * time.Hour)
	_, err := service.RecordDonation("donor-1", &dto.RecordDonationRequest{DonatedAt: recent})
	require.NoError(t, err)

	// Logging an older donation afterwards must not make the donor look
	// eligible sooner.
	_, err = service.RecordDonation("donor-1", &dto.RecordDonationRequest{DonatedAt: time.Now().Add(-90 * 24 * time.Hour)})
	require.NoError(t, err)

	assert.Len(t, repo.donations, 2)
	require.NotNil(t, profileRepo.donors["donor-1"].LastDonationAt)
	assert.Equal(t, recent, *profileRepo.donors["donor-1"].LastDonationAt)
}

func TestDonationService_FutureDateRejected(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	addDonor(profileRepo, "donor-1", "DEA 4", "Chennai")
	service := NewDonationService(&fakeDonationRepo{}, profileRepo)

	_, err := service.RecordDonation("donor-1", &dto.RecordDonationRequest{DonatedAt: time.Now().Add(time.Hour)})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestDonationService_UnknownDonorIs404(t *testing.T) {
	service := NewDonationService(&fakeDonationRepo{}, newFakeProfileRepo())

	_, err := service.RecordDonation("ghost", &dto.RecordDonationRequest{DonatedAt: time.Now().Add(-time.Hour)})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestDonationService_StatsMath(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	addDonor(profileRepo, "donor-1", "DEA 4", "Chennai")
	service := NewDonationService(&fakeDonationRepo{}, profileRepo)

	for i := 1; i <= 3; i++ {
		_, err := service.RecordDonation("donor-1", &dto.RecordDonationRequest{
			DonatedAt: time.Now().Add(-time.Duration(i) * 60 * 24 * time.Hour),
		})
		require.NoError(t, err)
	}

	stats, err := service.GetDonationStats("donor-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalDonations)
	assert.Equal(t, int64(3*models.DonationVolumeML), stats.TotalVolumeML)
	assert.Equal(t, int64(9), stats.LivesSaved)
}
