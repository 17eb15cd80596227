package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"k9hope_backend/internal/models"
	"k9hope_backend/internal/repositories"
	"k9hope_backend/internal/services/dto"
)

// fakeProfileRepo is an in-memory ProfileRepository covering the donor
// paths the matcher needs; the other role methods are straight maps.
type fakeProfileRepo struct {
	donors        map[string]*models.DonorProfile
	patients      map[string]*models.PatientProfile
	clinics       map[string]*models.ClinicProfile
	organisations map[string]*models.OrganisationProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		donors:        make(map[string]*models.DonorProfile),
		patients:      make(map[string]*models.PatientProfile),
		clinics:       make(map[string]*models.ClinicProfile),
		organisations: make(map[string]*models.OrganisationProfile),
	}
}

func (f *fakeProfileRepo) CreateDonorProfile(p *models.DonorProfile) error {
	f.donors[p.UserID] = p
	return nil
}

func (f *fakeProfileRepo) FindDonorProfileByUserID(userID string) (*models.DonorProfile, error) {
	p, ok := f.donors[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) UpdateDonorProfile(p *models.DonorProfile) error {
	f.donors[p.UserID] = p
	return nil
}

func (f *fakeProfileRepo) ListDonorProfiles(criteria repositories.DonorCriteria) ([]models.DonorProfile, int64, error) {
	var out []models.DonorProfile
	for _, p := range f.donors {
		if criteria.BloodGroup != "" && p.BloodGroup != criteria.BloodGroup {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProfileRepo) SetLastDonation(userID string, at time.Time) error {
	p, ok := f.donors[userID]
	if !ok {
		return repositories.ErrProfileNotFound
	}
	p.LastDonationAt = &at
	return nil
}

func (f *fakeProfileRepo) CreatePatientProfile(p *models.PatientProfile) error {
	f.patients[p.UserID] = p
	return nil
}

func (f *fakeProfileRepo) FindPatientProfileByUserID(userID string) (*models.PatientProfile, error) {
	p, ok := f.patients[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) UpdatePatientProfile(p *models.PatientProfile) error {
	f.patients[p.UserID] = p
	return nil
}

func (f *fakeProfileRepo) CreateClinicProfile(p *models.ClinicProfile) error {
	f.clinics[p.UserID] = p
	return nil
}

func (f *fakeProfileRepo) FindClinicProfileByUserID(userID string) (*models.ClinicProfile, error) {
	p, ok := f.clinics[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) UpdateClinicProfile(p *models.ClinicProfile) error {
	f.clinics[p.UserID] = p
	return nil
}

func (f *fakeProfileRepo) CreateOrganisationProfile(p *models.OrganisationProfile) error {
	f.organisations[p.UserID] = p
	return nil
}

func (f *fakeProfileRepo) FindOrganisationProfileByUserID(userID string) (*models.OrganisationProfile, error) {
	p, ok := f.organisations[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) UpdateOrganisationProfile(p *models.OrganisationProfile) error {
	f.organisations[p.UserID] = p
	return nil
}

// fakeRequestRepo is an in-memory BloodRequestRepository.
type fakeRequestRepo struct {
	requests map[string]*models.BloodRequest
	nextID   int
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]*models.BloodRequest)}
}

func (f *fakeRequestRepo) CreateRequest(r *models.BloodRequest) error {
	f.nextID++
	r.ID = string(rune('0' + f.nextID))
	r.CreatedAt = time.Now()
	f.requests[r.ID] = r
	return nil
}

func (f *fakeRequestRepo) FindRequestByID(id string) (*models.BloodRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, repositories.ErrRequestNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRequestRepo) FindOpenRequests() ([]models.BloodRequest, error) {
	var out []models.BloodRequest
	for _, r := range f.requests {
		if r.Status == models.RequestStatusPending {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) FindUserRequests(userID string, criteria repositories.RequestCriteria) ([]models.BloodRequest, int64, error) {
	var out []models.BloodRequest
	for _, r := range f.requests {
		if r.UserID != userID {
			continue
		}
		if criteria.Status != "" && string(r.Status) != criteria.Status {
			continue
		}
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRequestRepo) UpdateRequest(r *models.BloodRequest) error {
	f.requests[r.ID] = r
	return nil
}

func (f *fakeRequestRepo) UpdateStatus(id string, status models.RequestStatus) error {
	r, ok := f.requests[id]
	if !ok {
		return repositories.ErrRequestNotFound
	}
	r.Status = status
	return nil
}

func (f *fakeRequestRepo) FindStalePending(cutoff time.Time) ([]models.BloodRequest, error) {
	var out []models.BloodRequest
	for _, r := range f.requests {
		if r.Status == models.RequestStatusPending && r.CreatedAt.Before(cutoff) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func addDonor(repo *fakeProfileRepo, userID, bloodGroup, city string) {
	repo.donors[userID] = &models.DonorProfile{
		UserID:     userID,
		BloodGroup: bloodGroup,
		City:       city,
	}
}

func addPendingRequest(repo *fakeRequestRepo, userID, bloodGroup, city string, urgency models.Urgency) *models.BloodRequest {
	r := &models.BloodRequest{
		UserID:     userID,
		DogName:    "Jillu",
		BloodGroup: bloodGroup,
		City:       city,
		Urgency:    urgency,
		Status:     models.RequestStatusPending,
	}
	_ = repo.CreateRequest(r)
	return r
}

func TestMatchingService_FeedDefaultsToDonorBloodGroup(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	requestRepo := newFakeRequestRepo()
	service := NewMatchingService(requestRepo, profileRepo, newFakeNotificationRepo(), nil)

	addDonor(profileRepo, "donor-1", "DEA 1.1+", "Chennai")
	addPendingRequest(requestRepo, "patient-1", "DEA 1.1+", "Chennai", models.UrgencyImmediate)
	addPendingRequest(requestRepo, "patient-2", "DEA 4", "Chennai", models.UrgencyImmediate)

	feed, err := service.FindRequestsForDonor("donor-1", dto.MatchCriteria{})
	require.NoError(t, err)
	require.Equal(t, 1, feed.Total)
	assert.Equal(t, "DEA 1.1+", feed.Requests[0].BloodGroup)
}

func TestMatchingService_UrgentOnlyFilter(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	requestRepo := newFakeRequestRepo()
	service := NewMatchingService(requestRepo, profileRepo, newFakeNotificationRepo(), nil)

	addDonor(profileRepo, "donor-1", "Universal", "Chennai")
	addPendingRequest(requestRepo, "p1", "Universal", "Chennai", models.UrgencyWithin3Days)
	addPendingRequest(requestRepo, "p2", "Universal", "Chennai", models.UrgencyImmediate)

	feed, err := service.FindRequestsForDonor("donor-1", dto.MatchCriteria{UrgentOnly: true})
	require.NoError(t, err)
	require.Equal(t, 1, feed.Total)
	assert.Equal(t, string(models.UrgencyImmediate), feed.Requests[0].Urgency)
}

func TestMatchingService_UnknownDonorIs404(t *testing.T) {
	service := NewMatchingService(newFakeRequestRepo(), newFakeProfileRepo(), newFakeNotificationRepo(), nil)

	_, err := service.FindRequestsForDonor("ghost", dto.MatchCriteria{})
	require.Error(t, err)
}

func TestMatchingService_EligibilityUsesProfileFields(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	service := NewMatchingService(newFakeRequestRepo(), profileRepo, newFakeNotificationRepo(), nil)

	weight := 30.0
	vaccinated := true
	birth := time.Now().AddDate(-3, 0, 0)
	profileRepo.donors["donor-1"] = &models.DonorProfile{
		UserID:       "donor-1",
		WeightKG:     &weight,
		DateOfBirth:  &birth,
		Vaccinated:   &vaccinated,
		HealthStatus: models.HealthStatusHealthy,
	}

	result, err := service.CheckEligibility("donor-1")
	require.NoError(t, err)
	assert.True(t, result.Eligible)
	assert.Empty(t, result.FailedCriteria)
}

func TestMatchingService_FanOutSkipsRequester(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	requestRepo := newFakeRequestRepo()
	notificationRepo := newFakeNotificationRepo()
	publisher := &fakePublisher{}
	service := NewMatchingService(requestRepo, profileRepo, notificationRepo, publisher)

	addDonor(profileRepo, "donor-1", "DEA 4", "Chennai")
	addDonor(profileRepo, "donor-2", "DEA 4", "Mumbai")
	addDonor(profileRepo, "donor-3", "Universal", "Chennai")
	// The requester also has a matching donor profile; they must not be
	// notified about their own request.
	addDonor(profileRepo, "requester", "DEA 4", "Chennai")

	request := addPendingRequest(requestRepo, "requester", "DEA 4", "Chennai", models.UrgencyImmediate)
	service.NotifyMatchingDonors(request)

	for _, donorID := range []string{"donor-1", "donor-2"} {
		count, err := notificationRepo.GetUnreadCount(donorID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count, "donor %s", donorID)
	}
	for _, userID := range []string{"donor-3", "requester"} {
		count, err := notificationRepo.GetUnreadCount(userID)
		require.NoError(t, err)
		assert.Zero(t, count, "user %s", userID)
	}
	assert.ElementsMatch(t, []string{"donor-1", "donor-2"}, publisher.published)
}
