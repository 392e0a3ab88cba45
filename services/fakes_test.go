package services

import (
	"context"
	"sync"
	"time"

	"CarePoint/httperr"
	"CarePoint/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stores standing in for the mongo repositories. A shared
// sequence keeps createdAt strictly increasing so newest-first ordering
// is deterministic.

type fakeClock struct {
	mu  sync.Mutex
	seq int
}

func (c *fakeClock) next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return time.Unix(0, 0).Add(time.Duration(c.seq) * time.Second)
}

type fakePatientStore struct {
	clock    *fakeClock
	patients map[string]*models.Patient
}

func newFakePatientStore(clock *fakeClock) *fakePatientStore {
	return &fakePatientStore{clock: clock, patients: map[string]*models.Patient{}}
}

func (f *fakePatientStore) Create(_ context.Context, p *models.Patient) (*models.Patient, error) {
	if _, ok := f.patients[p.PatientID]; ok {
		return nil, httperr.Conflict("Patient ID exists")
	}
	p.ID = primitive.NewObjectID()
	now := f.clock.next()
	p.CreatedAt = now
	p.UpdatedAt = now
	stored := *p
	f.patients[p.PatientID] = &stored
	return p, nil
}

func (f *fakePatientStore) FindByPatientID(_ context.Context, patientID string) (*models.Patient, error) {
	p, ok := f.patients[patientID]
	if !ok {
		return nil, httperr.NotFound("Patient not found")
	}
	copied := *p
	return &copied, nil
}

func (f *fakePatientStore) UpdateByPatientID(_ context.Context, patientID string, set bson.M) (*models.Patient, error) {
	p, ok := f.patients[patientID]
	if !ok {
		return nil, httperr.NotFound("Patient not found")
	}
	for key, value := range set {
		s, _ := value.(string)
		switch key {
		case "name":
			p.Name = s
		case "address":
			p.Address = s
		case "aadhar":
			p.Aadhar = s
		case "phone":
			p.Phone = s
		case "bloodGroup":
			p.BloodGroup = s
		case "allergies":
			p.Allergies = s
		case "emergencyContact":
			p.EmergencyContact = s
		case "fingerprintUrl":
			p.FingerprintURL = s
		case "status":
			p.Status = s
		case "referredBy":
			p.ReferredBy = s
		case "roomType":
			p.RoomType = s
		case "roomNo":
			p.RoomNo = s
		case "wardNo":
			p.WardNo = s
		case "dischargeSummary":
			p.DischargeSummary = s
		}
	}
	p.UpdatedAt = f.clock.next()
	copied := *p
	return &copied, nil
}

func (f *fakePatientStore) List(_ context.Context) ([]models.Patient, error) {
	out := []models.Patient{}
	for _, p := range f.patients {
		out = append(out, *p)
	}
	return out, nil
}

type fakeBillStore struct {
	clock *fakeClock
	bills []*models.Bill
}

func newFakeBillStore(clock *fakeClock) *fakeBillStore {
	return &fakeBillStore{clock: clock}
}

func (f *fakeBillStore) Create(_ context.Context, b *models.Bill) (*models.Bill, error) {
	b.ID = primitive.NewObjectID()
	now := f.clock.next()
	b.CreatedAt = now
	b.UpdatedAt = now
	stored := *b
	f.bills = append(f.bills, &stored)
	return b, nil
}

func (f *fakeBillStore) UpdateByID(_ context.Context, billID string, set bson.M) (*models.Bill, error) {
	for _, b := range f.bills {
		if b.ID.Hex() == billID {
			if paid, ok := set["paid"].(bool); ok {
				b.Paid = paid
			}
			b.UpdatedAt = f.clock.next()
			copied := *b
			return &copied, nil
		}
	}
	return nil, httperr.NotFound("Bill not found")
}

func (f *fakeBillStore) DeleteByID(_ context.Context, billID string) error {
	for i, b := range f.bills {
		if b.ID.Hex() == billID {
			f.bills = append(f.bills[:i], f.bills[i+1:]...)
			return nil
		}
	}
	return httperr.NotFound("Bill not found")
}

func (f *fakeBillStore) DeleteAllPaid(_ context.Context) (int64, error) {
	kept := f.bills[:0]
	var removed int64
	for _, b := range f.bills {
		if b.Paid {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	f.bills = kept
	return removed, nil
}

func (f *fakeBillStore) ListByPatientID(_ context.Context, patientID string) ([]models.Bill, error) {
	out := []models.Bill{}
	// newest first
	for i := len(f.bills) - 1; i >= 0; i-- {
		if f.bills[i].PatientID == patientID {
			out = append(out, *f.bills[i])
		}
	}
	return out, nil
}

type fakeSummaryStore struct {
	clock     *fakeClock
	summaries []*models.DoctorSummary
}

func newFakeSummaryStore(clock *fakeClock) *fakeSummaryStore {
	return &fakeSummaryStore{clock: clock}
}

func (f *fakeSummaryStore) Create(_ context.Context, s *models.DoctorSummary) (*models.DoctorSummary, error) {
	s.ID = primitive.NewObjectID()
	s.CreatedAt = f.clock.next()
	stored := *s
	f.summaries = append(f.summaries, &stored)
	return s, nil
}

func (f *fakeSummaryStore) ListByPatientID(_ context.Context, patientID string) ([]models.DoctorSummary, error) {
	out := []models.DoctorSummary{}
	for i := len(f.summaries) - 1; i >= 0; i-- {
		if f.summaries[i].PatientID == patientID {
			out = append(out, *f.summaries[i])
		}
	}
	return out, nil
}

// fakeTxRunner runs the callback directly; transactional rollback is the
// driver's business, not the workflow's.
type fakeTxRunner struct {
	calls int
}

func (f *fakeTxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeLocker struct {
	acquired      int
	released      int
	releaseCtxErr error
}

func (f *fakeLocker) Acquire(_ context.Context, _, _ string, _ time.Duration) (bool, error) {
	f.acquired++
	return true, nil
}

func (f *fakeLocker) Release(ctx context.Context, _, _ string) error {
	f.released++
	f.releaseCtxErr = ctx.Err()
	return nil
}

type fixture struct {
	patients  *fakePatientStore
	bills     *fakeBillStore
	summaries *fakeSummaryStore
	tx        *fakeTxRunner
	locks     *fakeLocker
	service   *PatientService
}

func newFixture() *fixture {
	clock := &fakeClock{}
	f := &fixture{
		patients:  newFakePatientStore(clock),
		bills:     newFakeBillStore(clock),
		summaries: newFakeSummaryStore(clock),
		tx:        &fakeTxRunner{},
		locks:     &fakeLocker{},
	}
	f.service = NewPatientService(f.patients, f.bills, f.summaries, f.tx, f.locks)
	return f
}
