// Package invmanager orchestrates the inventory service operations. It sits
// between the HTTP handlers and the storage layer: request parsing and
// validation, field access policy enforcement, the domain rules of the
// component, installation, and location packages, and the catalog-driven
// capability checks all happen here.
package invmanager

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/switchscope/switchscope/internal/common/apperrors"
	"github.com/switchscope/switchscope/internal/common/uuid"
	"github.com/switchscope/switchscope/internal/invsrv/catalog"
	"github.com/switchscope/switchscope/internal/invsrv/db"
	"github.com/switchscope/switchscope/internal/invsrv/invcommon"
	"github.com/switchscope/switchscope/internal/invsrv/policy"
)

// CatalogResource is the uniform CRUD surface over one catalog table. The
// handlers resolve a kind from the URL and operate through this interface;
// rows travel as JSON in both directions.
type CatalogResource interface {
	Kind() string
	Create(ctx context.Context, body []byte) ([]byte, apperrors.Error)
	Get(ctx context.Context, id uuid.UUID) ([]byte, apperrors.Error)
	GetByCode(ctx context.Context, code string) ([]byte, apperrors.Error)
	List(ctx context.Context, activeOnly bool) ([]byte, apperrors.Error)
	Update(ctx context.Context, id uuid.UUID, body []byte) ([]byte, apperrors.Error)
	Delete(ctx context.Context, id uuid.UUID) apperrors.Error
}

// catalogResource implements CatalogResource for one concrete catalog row
// type. The store closures bind it to the CatalogManager methods for its
// table; the optional guards run before destructive operations.
type catalogResource[T any] struct {
	kind      string
	entry     func(*T) *catalog.CodedEntry
	create    func(ctx context.Context, m db.CatalogManager, obj *T) apperrors.Error
	getByID   func(ctx context.Context, m db.CatalogManager, id uuid.UUID) (*T, apperrors.Error)
	getByCode func(ctx context.Context, m db.CatalogManager, code string) (*T, apperrors.Error)
	list      func(ctx context.Context, m db.CatalogManager, activeOnly bool) ([]*T, apperrors.Error)
	update    func(ctx context.Context, m db.CatalogManager, obj *T) apperrors.Error
	delete    func(ctx context.Context, m db.CatalogManager, id uuid.UUID) apperrors.Error

	// beforeUpdate may veto an update given the stored and the proposed row.
	beforeUpdate func(ctx context.Context, existing, updated *T) apperrors.Error
	// beforeDelete may veto a deletion of the stored row.
	beforeDelete func(ctx context.Context, existing *T) apperrors.Error
}

func (c *catalogResource[T]) Kind() string {
	return c.kind
}

func (c *catalogResource[T]) Create(ctx context.Context, body []byte) ([]byte, apperrors.Error) {
	obj := new(T)
	if err := json.Unmarshal(body, obj); err != nil {
		return nil, ErrInvalidSchema.Err(err)
	}

	e := c.entry(obj)
	e.Code = strings.ToUpper(strings.TrimSpace(e.Code))
	if e.Code == "" || e.DisplayName == "" {
		return nil, ErrInvalidSchema.Msg("code and displayName are required")
	}
	e.ID = uuid.Nil
	e.Active = true

	if err := c.create(ctx, db.DB(ctx), obj); err != nil {
		return nil, err
	}
	log.Ctx(ctx).Info().Str("kind", c.kind).Str("code", e.Code).Msg("created catalog entry")
	return marshalRsp(obj)
}

func (c *catalogResource[T]) Get(ctx context.Context, id uuid.UUID) ([]byte, apperrors.Error) {
	obj, err := c.getByID(ctx, db.DB(ctx), id)
	if err != nil {
		return nil, err
	}
	return marshalRsp(obj)
}

func (c *catalogResource[T]) GetByCode(ctx context.Context, code string) ([]byte, apperrors.Error) {
	obj, err := c.getByCode(ctx, db.DB(ctx), code)
	if err != nil {
		return nil, err
	}
	return marshalRsp(obj)
}

func (c *catalogResource[T]) List(ctx context.Context, activeOnly bool) ([]byte, apperrors.Error) {
	objs, err := c.list(ctx, db.DB(ctx), activeOnly)
	if err != nil {
		return nil, err
	}
	return marshalRsp(objs)
}

func (c *catalogResource[T]) Update(ctx context.Context, id uuid.UUID, body []byte) ([]byte, apperrors.Error) {
	if err := policy.ValidateUpdate(policy.CatalogEntryFields, body, invcommon.IsAdmin(ctx)); err != nil {
		return nil, err
	}

	existing, err := c.getByID(ctx, db.DB(ctx), id)
	if err != nil {
		return nil, err
	}
	keep := *c.entry(existing)

	updated := new(T)
	*updated = *existing
	if jsonErr := json.Unmarshal(body, updated); jsonErr != nil {
		return nil, ErrInvalidSchema.Err(jsonErr)
	}

	// Read-only fields are dropped, not rejected: restore them from the
	// stored row no matter what the body said.
	e := c.entry(updated)
	e.ID = keep.ID
	e.Code = keep.Code
	e.CreatedAt = keep.CreatedAt
	e.UpdatedAt = keep.UpdatedAt

	if e.DisplayName == "" {
		return nil, ErrInvalidSchema.Msg("displayName is required")
	}

	if c.beforeUpdate != nil {
		if err := c.beforeUpdate(ctx, existing, updated); err != nil {
			return nil, err
		}
	}

	if err := c.update(ctx, db.DB(ctx), updated); err != nil {
		return nil, err
	}
	return marshalRsp(updated)
}

func (c *catalogResource[T]) Delete(ctx context.Context, id uuid.UUID) apperrors.Error {
	existing, err := c.getByID(ctx, db.DB(ctx), id)
	if err != nil {
		return err
	}

	if c.beforeDelete != nil {
		if err := c.beforeDelete(ctx, existing); err != nil {
			return err
		}
	}

	if err := c.delete(ctx, db.DB(ctx), id); err != nil {
		return err
	}
	log.Ctx(ctx).Info().Str("kind", c.kind).Str("code", c.entry(existing).Code).Msg("deleted catalog entry")
	return nil
}

func marshalRsp(v any) ([]byte, apperrors.Error) {
	out, err := json.Marshal(v)
	if err != nil {
		return nil, ErrInventoryError.Msg("failed to serialize response").Err(err)
	}
	return out, nil
}
