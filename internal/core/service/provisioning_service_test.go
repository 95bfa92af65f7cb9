package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/elbuensabor/backoffice/internal/core/domain"
	"github.com/elbuensabor/backoffice/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs with failure injection
// ---------------------------------------------------------------------------

type stubCredentialStore struct {
	identities map[string]*domain.Identity // keyed by identity id
	createErr  error
	deleteErr  error
	nextID     int
}

func newStubCredentialStore() *stubCredentialStore {
	return &stubCredentialStore{identities: make(map[string]*domain.Identity)}
}

func (s *stubCredentialStore) CreateIdentity(ctx context.Context, identity *domain.Identity) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.createErr != nil {
		return "", s.createErr
	}
	for _, existing := range s.identities {
		if existing.Email == identity.Email {
			return "", domain.ErrEmailTaken
		}
	}
	s.nextID++
	id := fmt.Sprintf("uid-%d", s.nextID)
	clone := *identity
	clone.ID = id
	s.identities[id] = &clone
	return id, nil
}

func (s *stubCredentialStore) FindByEmail(_ context.Context, email string) (*domain.Identity, error) {
	for _, identity := range s.identities {
		if identity.Email == email {
			clone := *identity
			return &clone, nil
		}
	}
	return nil, domain.ErrIdentityNotFound
}

func (s *stubCredentialStore) DeleteIdentity(_ context.Context, identityID string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.identities, identityID) // idempotent
	return nil
}

type stubStaffRepo struct {
	profiles  map[string]*domain.StaffProfile // keyed by identity id
	createErr error
	deleteErr error
}

func newStubStaffRepo() *stubStaffRepo {
	return &stubStaffRepo{profiles: make(map[string]*domain.StaffProfile)}
}

func (r *stubStaffRepo) Create(_ context.Context, profile *domain.StaffProfile) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *profile
	r.profiles[profile.IdentityID] = &clone
	return nil
}

func (r *stubStaffRepo) Get(_ context.Context, identityID string) (*domain.StaffProfile, error) {
	p, ok := r.profiles[identityID]
	if !ok {
		return nil, domain.ErrStaffNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubStaffRepo) Update(_ context.Context, identityID string, fields ports.StaffUpdate) error {
	p, ok := r.profiles[identityID]
	if !ok {
		return domain.ErrStaffNotFound
	}
	if fields.Position != nil {
		p.Position = *fields.Position
	}
	if fields.Salary != nil {
		p.Salary = *fields.Salary
	}
	return nil
}

func (r *stubStaffRepo) Delete(_ context.Context, identityID string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.profiles[identityID]; !ok {
		return domain.ErrStaffNotFound
	}
	delete(r.profiles, identityID)
	return nil
}

func (r *stubStaffRepo) List(_ context.Context) ([]*domain.StaffProfile, error) {
	out := make([]*domain.StaffProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func newProvisioningSvc(creds *stubCredentialStore, staff *stubStaffRepo) *ProvisioningService {
	return NewProvisioningService(creds, staff, zerolog.Nop())
}

var validInput = ports.ProvisionInput{
	Email:    "ana@elbuensabor.co",
	Password: "s3cret-pass",
	Name:     "Ana Lopez",
	Role:     "cashier",
}

// ---------------------------------------------------------------------------
// Provision
// ---------------------------------------------------------------------------

func TestProvision_Success(t *testing.T) {
	creds := newStubCredentialStore()
	staff := newStubStaffRepo()
	svc := newProvisioningSvc(creds, staff)

	id, err := svc.Provision(context.Background(), validInput)
	if err != nil {
		t.Fatalf("Provision returned error: %v", err)
	}
	if id == "" {
		t.Fatal("expected identity id")
	}
	if len(creds.identities) != 1 || len(staff.profiles) != 1 {
		t.Fatalf("expected exactly one identity and one profile, got %d/%d",
			len(creds.identities), len(staff.profiles))
	}
	profile := staff.profiles[id]
	if profile == nil {
		t.Fatalf("profile not keyed by identity id %q", id)
	}
	if profile.Role != domain.RoleCashier || profile.Email != validInput.Email {
		t.Errorf("unexpected profile: %+v", profile)
	}
	identity := creds.identities[id]
	if identity.PasswordHash == validInput.Password {
		t.Error("password stored in clear")
	}
}

func TestProvision_Validation(t *testing.T) {
	creds := newStubCredentialStore()
	staff := newStubStaffRepo()
	svc := newProvisioningSvc(creds, staff)

	bad := validInput
	bad.Role = "janitor"
	if _, err := svc.Provision(context.Background(), bad); !errors.Is(err, domain.ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}

	bad = validInput
	bad.Password = "short"
	if _, err := svc.Provision(context.Background(), bad); !errors.Is(err, domain.ErrPasswordTooShort) {
		t.Errorf("expected ErrPasswordTooShort, got %v", err)
	}

	if len(creds.identities) != 0 || len(staff.profiles) != 0 {
		t.Error("validation failures must not touch the stores")
	}
}

func TestProvision_CredentialFailureReturnedVerbatim(t *testing.T) {
	creds := newStubCredentialStore()
	creds.createErr = domain.ErrStoreUnavailable
	staff := newStubStaffRepo()
	svc := newProvisioningSvc(creds, staff)

	_, err := svc.Provision(context.Background(), validInput)
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected the store failure verbatim, got %v", err)
	}
	var pf *domain.PartialFailureError
	if errors.As(err, &pf) {
		t.Fatal("a step-1 failure is not a partial failure")
	}
	if len(staff.profiles) != 0 {
		t.Error("no profile may be created after a credential failure")
	}
}

func TestProvision_ProfileFailureCompensated(t *testing.T) {
	creds := newStubCredentialStore()
	staff := newStubStaffRepo()
	staff.createErr = errors.New("profile store rejected write")
	svc := newProvisioningSvc(creds, staff)

	_, err := svc.Provision(context.Background(), validInput)

	var pf *domain.PartialFailureError
	if !errors.As(err, &pf) {
		t.Fatalf("expected PartialFailureError, got %v", err)
	}
	if !pf.Compensated {
		t.Error("expected the compensated outcome")
	}
	// Compensation invariant: the system converges to zero of both.
	if len(creds.identities) != 0 {
		t.Errorf("expected identity rolled back, %d remain", len(creds.identities))
	}
	if len(staff.profiles) != 0 {
		t.Errorf("expected zero profiles, got %d", len(staff.profiles))
	}
}

func TestProvision_CompensationFailureRequiresManualCleanup(t *testing.T) {
	creds := newStubCredentialStore()
	creds.deleteErr = errors.New("credential service unreachable")
	staff := newStubStaffRepo()
	staff.createErr = errors.New("profile store rejected write")
	svc := newProvisioningSvc(creds, staff)

	_, err := svc.Provision(context.Background(), validInput)

	var pf *domain.PartialFailureError
	if !errors.As(err, &pf) {
		t.Fatalf("expected PartialFailureError, got %v", err)
	}
	if pf.Compensated {
		t.Error("compensation failed, outcome must not claim otherwise")
	}
	if pf.IdentityID == "" || pf.Email != validInput.Email {
		t.Errorf("manual remediation needs identity id and email, got %+v", pf)
	}
	// The orphaned identity is still there and the error says so.
	if len(creds.identities) != 1 {
		t.Errorf("expected the orphaned identity to remain, got %d", len(creds.identities))
	}
}

func TestProvision_CancelledStepHasUnknownOutcome(t *testing.T) {
	creds := newStubCredentialStore()
	staff := newStubStaffRepo()
	svc := newProvisioningSvc(creds, staff)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Provision(ctx, validInput)
	var uo *domain.UnknownOutcomeError
	if !errors.As(err, &uo) {
		t.Fatalf("expected UnknownOutcomeError, got %v", err)
	}
	if uo.Email != validInput.Email {
		t.Errorf("unknown outcome must carry the email, got %+v", uo)
	}
}

// ---------------------------------------------------------------------------
// Deprovision
// ---------------------------------------------------------------------------

func TestProvisionThenDeprovision_LeavesNothing(t *testing.T) {
	creds := newStubCredentialStore()
	staff := newStubStaffRepo()
	svc := newProvisioningSvc(creds, staff)

	if _, err := svc.Provision(context.Background(), validInput); err != nil {
		t.Fatalf("provision failed: %v", err)
	}
	// Name resolution is case-insensitive.
	if err := svc.Deprovision(context.Background(), "  ANA lopez "); err != nil {
		t.Fatalf("deprovision failed: %v", err)
	}
	if len(creds.identities) != 0 || len(staff.profiles) != 0 {
		t.Fatalf("expected zero identities and profiles, got %d/%d",
			len(creds.identities), len(staff.profiles))
	}
}

func TestDeprovision_ProfileDeleteFailure_AccountIntact(t *testing.T) {
	creds := newStubCredentialStore()
	staff := newStubStaffRepo()
	svc := newProvisioningSvc(creds, staff)

	if _, err := svc.Provision(context.Background(), validInput); err != nil {
		t.Fatalf("provision failed: %v", err)
	}
	staff.deleteErr = errors.New("profile store unreachable")

	if err := svc.Deprovision(context.Background(), validInput.Name); err == nil {
		t.Fatal("expected error")
	}
	// Fail closed: nothing was deleted.
	if len(creds.identities) != 1 || len(staff.profiles) != 1 {
		t.Fatalf("account must stay fully intact, got %d/%d",
			len(creds.identities), len(staff.profiles))
	}
}

func TestDeprovision_CredentialDeleteFailure_ReportsOrphan(t *testing.T) {
	creds := newStubCredentialStore()
	staff := newStubStaffRepo()
	svc := newProvisioningSvc(creds, staff)

	if _, err := svc.Provision(context.Background(), validInput); err != nil {
		t.Fatalf("provision failed: %v", err)
	}
	creds.deleteErr = errors.New("credential service unreachable")

	err := svc.Deprovision(context.Background(), validInput.Name)
	var oc *domain.OrphanedCredentialError
	if !errors.As(err, &oc) {
		t.Fatalf("expected OrphanedCredentialError, got %v", err)
	}
	if oc.Email != validInput.Email {
		t.Errorf("orphan report must carry the email, got %+v", oc)
	}
	if len(staff.profiles) != 0 {
		t.Error("profile should be gone")
	}
	if len(creds.identities) != 1 {
		t.Error("the login-capable credential remains and must be reported")
	}
}

func TestDeprovision_UnknownName(t *testing.T) {
	svc := newProvisioningSvc(newStubCredentialStore(), newStubStaffRepo())
	if err := svc.Deprovision(context.Background(), "nobody"); !errors.Is(err, domain.ErrStaffNotFound) {
		t.Fatalf("expected ErrStaffNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Contract updates
// ---------------------------------------------------------------------------

func TestUpdateContract(t *testing.T) {
	creds := newStubCredentialStore()
	staff := newStubStaffRepo()
	svc := newProvisioningSvc(creds, staff)

	id, err := svc.Provision(context.Background(), validInput)
	if err != nil {
		t.Fatalf("provision failed: %v", err)
	}

	salary := decimal.NewFromInt(2400)
	if err := svc.UpdateContract(context.Background(), validInput.Name, "Head Cashier", salary); err != nil {
		t.Fatalf("UpdateContract returned error: %v", err)
	}
	p := staff.profiles[id]
	if p.Position != "head cashier" {
		t.Errorf("position not normalized: %q", p.Position)
	}
	if !p.Salary.Equal(salary) {
		t.Errorf("salary = %s, want %s", p.Salary, salary)
	}

	if err := svc.UpdateContract(context.Background(), validInput.Name, "x", decimal.Zero); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount for non-positive salary, got %v", err)
	}
}
