// internal/repo/registry.go
package repo

import (
	"context"
	"strings"
	"sync"

	"gmao/internal/models"
	"gmao/internal/store"
)

// Persisted collection names match the legacy JSON layout.
const (
	ColUsers      = "users"
	ColEquipment  = "equipements"
	ColWorkOrders = "interventions"
	ColStock      = "stocks"
	ColTools      = "outillages"
	ColThird      = "tiers"
	ColPersonnel  = "personnels"
)

// Registry holds one repository per entity type over a shared backend and
// allocator. It is constructed once at process start and passed to services
// and handlers; the embedded mutex serializes every mutation across the
// whole store.
type Registry struct {
	backend store.Backend
	alloc   *Allocator
	mu      sync.Mutex

	Users        *Collection[models.User]
	Equipment    *Collection[models.Equipment]
	WorkOrders   *Collection[models.WorkOrder]
	Stock        *Collection[models.StockItem]
	Tools        *Collection[models.Tool]
	ThirdParties *Collection[models.ThirdParty]
	Personnel    *Collection[models.Personnel]
}

func New(backend store.Backend) *Registry {
	r := &Registry{backend: backend, alloc: NewAllocator()}

	r.Users = newCollection(backend, r.alloc, &r.mu, Descriptor[models.User]{
		Collection: ColUsers,
		ID:         func(u models.User) int64 { return u.ID },
		SetID:      func(u *models.User, id int64) { u.ID = id },
		UniqueKeys: []UniqueKey[models.User]{
			{Field: "username", Value: func(u models.User) string { return strings.ToLower(u.Username) }},
		},
		Defaults: func(u *models.User) {
			u.Username = strings.ToLower(strings.TrimSpace(u.Username))
			if u.Role == "" {
				u.Role = models.RoleTechnician
			}
		},
		Validate: func(_ context.Context, u models.User) error {
			if !u.Role.Valid() {
				return models.Invalid("role", "unknown role")
			}
			if u.PasswordHash == "" {
				return models.Invalid("password_hash", "required")
			}
			return nil
		},
		DeleteCheck: r.restrictUserDelete,
		Seed:        seedUsers,
	})

	r.Equipment = newCollection(backend, r.alloc, &r.mu, Descriptor[models.Equipment]{
		Collection: ColEquipment,
		ID:         func(e models.Equipment) int64 { return e.ID },
		SetID:      func(e *models.Equipment, id int64) { e.ID = id },
		CodePrefix: "EQ",
		CodeWidth:  3,
		Code:       func(e models.Equipment) string { return e.Code },
		SetCode:    func(e *models.Equipment, c string) { e.Code = c },
		UniqueKeys: []UniqueKey[models.Equipment]{
			{Field: "code", Value: func(e models.Equipment) string { return e.Code }},
		},
		Defaults: func(e *models.Equipment) {
			if e.State == "" {
				e.State = models.EquipmentOperational
			}
		},
		Validate: func(_ context.Context, e models.Equipment) error {
			if strings.TrimSpace(e.Name) == "" {
				return models.Invalid("name", "required")
			}
			if !e.State.Valid() {
				return models.Invalid("state", "unknown state")
			}
			return nil
		},
		DeleteCheck: r.restrictEquipmentDelete,
		Seed:        seedEquipment,
	})

	r.WorkOrders = newCollection(backend, r.alloc, &r.mu, Descriptor[models.WorkOrder]{
		Collection: ColWorkOrders,
		ID:         func(w models.WorkOrder) int64 { return w.ID },
		SetID:      func(w *models.WorkOrder, id int64) { w.ID = id },
		CodePrefix: "INT",
		CodeWidth:  4,
		Code:       func(w models.WorkOrder) string { return w.Code },
		SetCode:    func(w *models.WorkOrder, c string) { w.Code = c },
		UniqueKeys: []UniqueKey[models.WorkOrder]{
			{Field: "code", Value: func(w models.WorkOrder) string { return w.Code }},
		},
		Defaults: func(w *models.WorkOrder) {
			if w.Status == "" {
				w.Status = models.StatusToPlan
			}
			if w.Priority == "" {
				w.Priority = models.PriorityMedium
			}
		},
		Validate: r.validateWorkOrder,
		Seed:     seedWorkOrders,
	})

	r.Stock = newCollection(backend, r.alloc, &r.mu, Descriptor[models.StockItem]{
		Collection: ColStock,
		ID:         func(s models.StockItem) int64 { return s.ID },
		SetID:      func(s *models.StockItem, id int64) { s.ID = id },
		UniqueKeys: []UniqueKey[models.StockItem]{
			{Field: "reference", Value: func(s models.StockItem) string { return s.Reference }},
		},
		Validate: func(_ context.Context, s models.StockItem) error {
			if strings.TrimSpace(s.Designation) == "" {
				return models.Invalid("designation", "required")
			}
			if s.Quantity < 0 {
				return models.Invalid("quantity", "must be >= 0")
			}
			if s.MinThreshold < 0 {
				return models.Invalid("min_threshold", "must be >= 0")
			}
			return nil
		},
		Seed: seedStock,
	})

	r.Tools = newCollection(backend, r.alloc, &r.mu, Descriptor[models.Tool]{
		Collection: ColTools,
		ID:         func(t models.Tool) int64 { return t.ID },
		SetID:      func(t *models.Tool, id int64) { t.ID = id },
		UniqueKeys: []UniqueKey[models.Tool]{
			{Field: "reference", Value: func(t models.Tool) string { return t.Reference }},
		},
		Defaults: func(t *models.Tool) {
			if t.Availability == "" {
				t.Availability = models.ToolAvailable
			}
			if t.Condition == "" {
				t.Condition = models.ConditionGood
			}
		},
		Validate: func(_ context.Context, t models.Tool) error {
			if strings.TrimSpace(t.Name) == "" {
				return models.Invalid("name", "required")
			}
			if !t.Condition.Valid() {
				return models.Invalid("condition", "unknown condition")
			}
			if !t.Availability.Valid() {
				return models.Invalid("availability", "unknown availability")
			}
			// A tool is on loan exactly when all three loan fields are set.
			onLoan := t.Availability == models.ToolOnLoan
			loanFields := t.Borrower != "" && t.LoanDate != nil && t.ExpectedReturn != nil
			if onLoan && !loanFields {
				return models.Invalid("availability", "on_loan requires borrower, loan date and expected return")
			}
			if !onLoan && (t.Borrower != "" || t.LoanDate != nil || t.ExpectedReturn != nil) {
				return models.Invalid("availability", "loan fields set on a tool that is not on loan")
			}
			return nil
		},
		Seed: seedTools,
	})

	r.ThirdParties = newCollection(backend, r.alloc, &r.mu, Descriptor[models.ThirdParty]{
		Collection: ColThird,
		ID:         func(t models.ThirdParty) int64 { return t.ID },
		SetID:      func(t *models.ThirdParty, id int64) { t.ID = id },
		Validate: func(_ context.Context, t models.ThirdParty) error {
			if strings.TrimSpace(t.Name) == "" {
				return models.Invalid("name", "required")
			}
			if !t.Kind.Valid() {
				return models.Invalid("kind", "unknown kind")
			}
			return nil
		},
		Seed: seedThirdParties,
	})

	r.Personnel = newCollection(backend, r.alloc, &r.mu, Descriptor[models.Personnel]{
		Collection: ColPersonnel,
		ID:         func(p models.Personnel) int64 { return p.ID },
		SetID:      func(p *models.Personnel, id int64) { p.ID = id },
		UniqueKeys: []UniqueKey[models.Personnel]{
			{Field: "badge_number", Value: func(p models.Personnel) string { return p.BadgeNumber }},
		},
		Defaults: func(p *models.Personnel) {
			if p.Status == "" {
				p.Status = models.PersonnelActive
			}
		},
		Validate: func(_ context.Context, p models.Personnel) error {
			if strings.TrimSpace(p.FullName) == "" {
				return models.Invalid("full_name", "required")
			}
			if !p.Status.Valid() {
				return models.Invalid("status", "unknown status")
			}
			return nil
		},
		Seed: seedPersonnel,
	})

	return r
}

// Warm loads every collection eagerly, seeding the ones the backend does
// not hold yet. Called once at startup so storage problems fail fast.
func (r *Registry) Warm(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.Users.load(ctx); err != nil {
		return err
	}
	if err := r.Equipment.load(ctx); err != nil {
		return err
	}
	if err := r.WorkOrders.load(ctx); err != nil {
		return err
	}
	if err := r.Stock.load(ctx); err != nil {
		return err
	}
	if err := r.Tools.load(ctx); err != nil {
		return err
	}
	if err := r.ThirdParties.load(ctx); err != nil {
		return err
	}
	if err := r.Personnel.load(ctx); err != nil {
		return err
	}
	return nil
}

// Close releases the underlying backend.
func (r *Registry) Close() error { return r.backend.Close() }

// validateWorkOrder enforces enum values and that the equipment and
// technician references point at existing records.
func (r *Registry) validateWorkOrder(ctx context.Context, w models.WorkOrder) error {
	if strings.TrimSpace(w.Description) == "" {
		return models.Invalid("description", "required")
	}
	if !w.Priority.Valid() {
		return models.Invalid("priority", "unknown priority")
	}
	if !w.Status.Valid() {
		return models.Invalid("status", "unknown status")
	}
	if _, err := r.Equipment.getLocked(ctx, w.EquipmentID); err != nil {
		return models.Invalid("equipment_id", "no such equipment")
	}
	if _, err := r.Users.getLocked(ctx, w.TechnicianID); err != nil {
		return models.Invalid("technician_id", "no such user")
	}
	return nil
}

// Deleting equipment or a user still referenced by work orders is refused;
// the caller has to close or reassign the work orders first.
func (r *Registry) restrictEquipmentDelete(ctx context.Context, e models.Equipment) error {
	orders, err := r.WorkOrders.allLocked(ctx)
	if err != nil {
		return err
	}
	for _, w := range orders {
		if w.EquipmentID == e.ID {
			return models.ErrConflict
		}
	}
	return nil
}

func (r *Registry) restrictUserDelete(ctx context.Context, u models.User) error {
	orders, err := r.WorkOrders.allLocked(ctx)
	if err != nil {
		return err
	}
	for _, w := range orders {
		if w.TechnicianID == u.ID || w.CreatedBy == u.ID {
			return models.ErrConflict
		}
	}
	return nil
}
