package invmanager

import (
	"context"

	"github.com/switchscope/switchscope/internal/common/apperrors"
	"github.com/switchscope/switchscope/internal/common/uuid"
	"github.com/switchscope/switchscope/internal/invsrv/catalog"
	"github.com/switchscope/switchscope/internal/invsrv/db"
)

// Catalog kinds as they appear in URLs.
const (
	KindComponentCategories  = "component-categories"
	KindComponentTypes       = "component-types"
	KindComponentModels      = "component-models"
	KindComponentNatures     = "component-natures"
	KindComponentStatuses    = "component-statuses"
	KindInstallationStatuses = "installation-statuses"
	KindInstallableTypes     = "installable-types"
	KindLocationTypes        = "location-types"
)

var componentCategoryResource = &catalogResource[catalog.ComponentCategory]{
	kind:  KindComponentCategories,
	entry: func(c *catalog.ComponentCategory) *catalog.CodedEntry { return &c.CodedEntry },
	create: func(ctx context.Context, m db.CatalogManager, c *catalog.ComponentCategory) apperrors.Error {
		return m.CreateComponentCategory(ctx, c)
	},
	getByID: func(ctx context.Context, m db.CatalogManager, id uuid.UUID) (*catalog.ComponentCategory, apperrors.Error) {
		return m.GetComponentCategory(ctx, id)
	},
	getByCode: func(ctx context.Context, m db.CatalogManager, code string) (*catalog.ComponentCategory, apperrors.Error) {
		return m.GetComponentCategoryByCode(ctx, code)
	},
	list: func(ctx context.Context, m db.CatalogManager, activeOnly bool) ([]*catalog.ComponentCategory, apperrors.Error) {
		return m.ListComponentCategories(ctx, activeOnly)
	},
	update: func(ctx context.Context, m db.CatalogManager, c *catalog.ComponentCategory) apperrors.Error {
		return m.UpdateComponentCategory(ctx, c)
	},
	delete: func(ctx context.Context, m db.CatalogManager, id uuid.UUID) apperrors.Error {
		return m.DeleteComponentCategory(ctx, id)
	},
	beforeUpdate: func(ctx context.Context, existing, updated *catalog.ComponentCategory) apperrors.Error {
		// Deactivating a category with active types would orphan them.
		if existing.Active && !updated.Active {
			count, err := db.DB(ctx).CountActiveTypesInCategory(ctx, existing.Code)
			if err != nil {
				return err
			}
			if !existing.CanBeDeactivated(count) {
				return ErrCatalogEntryInUse.Msg("category still has active component types")
			}
		}
		return nil
	},
	beforeDelete: func(ctx context.Context, existing *catalog.ComponentCategory) apperrors.Error {
		count, err := db.DB(ctx).CountActiveTypesInCategory(ctx, existing.Code)
		if err != nil {
			return err
		}
		if !existing.CanBeDeleted(count) {
			return ErrCatalogEntryInUse.Msg("category still has active component types")
		}
		return nil
	},
}

var componentTypeResource = &catalogResource[catalog.ComponentType]{
	kind:  KindComponentTypes,
	entry: func(t *catalog.ComponentType) *catalog.CodedEntry { return &t.CodedEntry },
	create: func(ctx context.Context, m db.CatalogManager, t *catalog.ComponentType) apperrors.Error {
		if t.CategoryCode == "" {
			return ErrInvalidSchema.Msg("categoryCode is required")
		}
		if _, err := m.GetComponentCategoryByCode(ctx, t.CategoryCode); err != nil {
			return ErrUnknownCatalogEntry.Msg("unknown component category " + t.CategoryCode)
		}
		if !t.IsValidConfiguration() {
			return ErrInvalidSchema.Msg("inconsistent component type configuration")
		}
		return m.CreateComponentType(ctx, t)
	},
	getByID: func(ctx context.Context, m db.CatalogManager, id uuid.UUID) (*catalog.ComponentType, apperrors.Error) {
		return m.GetComponentType(ctx, id)
	},
	getByCode: func(ctx context.Context, m db.CatalogManager, code string) (*catalog.ComponentType, apperrors.Error) {
		return m.GetComponentTypeByCode(ctx, code)
	},
	list: func(ctx context.Context, m db.CatalogManager, activeOnly bool) ([]*catalog.ComponentType, apperrors.Error) {
		return m.ListComponentTypes(ctx, activeOnly)
	},
	update: func(ctx context.Context, m db.CatalogManager, t *catalog.ComponentType) apperrors.Error {
		return m.UpdateComponentType(ctx, t)
	},
	delete: func(ctx context.Context, m db.CatalogManager, id uuid.UUID) apperrors.Error {
		return m.DeleteComponentType(ctx, id)
	},
	beforeUpdate: func(ctx context.Context, existing, updated *catalog.ComponentType) apperrors.Error {
		if !updated.IsValidConfiguration() {
			return ErrInvalidSchema.Msg("inconsistent component type configuration")
		}
		if updated.CategoryCode != existing.CategoryCode {
			if _, err := db.DB(ctx).GetComponentCategoryByCode(ctx, updated.CategoryCode); err != nil {
				return ErrUnknownCatalogEntry.Msg("unknown component category " + updated.CategoryCode)
			}
		}
		// Deactivating a type still assigned to components would strand them.
		if existing.Active && !updated.Active {
			count, err := db.DB(ctx).CountComponentsOfType(ctx, existing.Code)
			if err != nil {
				return err
			}
			if !existing.CanBeDeactivated(count) {
				return ErrCatalogEntryInUse.Msg("component type is still assigned to components")
			}
		}
		return nil
	},
	beforeDelete: func(ctx context.Context, existing *catalog.ComponentType) apperrors.Error {
		count, err := db.DB(ctx).CountComponentsOfType(ctx, existing.Code)
		if err != nil {
			return err
		}
		if !existing.CanBeDeleted(count) {
			return ErrCatalogEntryInUse.Msg("component type is still assigned to components")
		}
		return nil
	},
}

var componentModelResource = &catalogResource[catalog.ComponentModel]{
	kind:  KindComponentModels,
	entry: func(m *catalog.ComponentModel) *catalog.CodedEntry { return &m.CodedEntry },
	create: func(ctx context.Context, cm db.CatalogManager, m *catalog.ComponentModel) apperrors.Error {
		if _, err := cm.GetComponentTypeByCode(ctx, m.TypeCode); err != nil {
			return ErrUnknownCatalogEntry.Msg("unknown component type " + m.TypeCode)
		}
		if !m.IsValidConfiguration() {
			return ErrInvalidSchema.Msg("manufacturer, model number, and type code are required")
		}
		return cm.CreateComponentModel(ctx, m)
	},
	getByID: func(ctx context.Context, cm db.CatalogManager, id uuid.UUID) (*catalog.ComponentModel, apperrors.Error) {
		return cm.GetComponentModel(ctx, id)
	},
	getByCode: func(ctx context.Context, cm db.CatalogManager, code string) (*catalog.ComponentModel, apperrors.Error) {
		return cm.GetComponentModelByCode(ctx, code)
	},
	list: func(ctx context.Context, cm db.CatalogManager, activeOnly bool) ([]*catalog.ComponentModel, apperrors.Error) {
		return cm.ListComponentModels(ctx, activeOnly)
	},
	update: func(ctx context.Context, cm db.CatalogManager, m *catalog.ComponentModel) apperrors.Error {
		return cm.UpdateComponentModel(ctx, m)
	},
	delete: func(ctx context.Context, cm db.CatalogManager, id uuid.UUID) apperrors.Error {
		return cm.DeleteComponentModel(ctx, id)
	},
	beforeUpdate: func(ctx context.Context, existing, updated *catalog.ComponentModel) apperrors.Error {
		if !updated.IsValidConfiguration() {
			return ErrInvalidSchema.Msg("inconsistent component model configuration")
		}
		if updated.TypeCode != existing.TypeCode {
			if _, err := db.DB(ctx).GetComponentTypeByCode(ctx, updated.TypeCode); err != nil {
				return ErrUnknownCatalogEntry.Msg("unknown component type " + updated.TypeCode)
			}
		}
		return nil
	},
}

var componentNatureResource = &catalogResource[catalog.ComponentNature]{
	kind:  KindComponentNatures,
	entry: func(n *catalog.ComponentNature) *catalog.CodedEntry { return &n.CodedEntry },
	create: func(ctx context.Context, m db.CatalogManager, n *catalog.ComponentNature) apperrors.Error {
		return m.CreateComponentNature(ctx, n)
	},
	getByID: func(ctx context.Context, m db.CatalogManager, id uuid.UUID) (*catalog.ComponentNature, apperrors.Error) {
		return m.GetComponentNature(ctx, id)
	},
	getByCode: func(ctx context.Context, m db.CatalogManager, code string) (*catalog.ComponentNature, apperrors.Error) {
		return m.GetComponentNatureByCode(ctx, code)
	},
	list: func(ctx context.Context, m db.CatalogManager, activeOnly bool) ([]*catalog.ComponentNature, apperrors.Error) {
		return m.ListComponentNatures(ctx, activeOnly)
	},
	update: func(ctx context.Context, m db.CatalogManager, n *catalog.ComponentNature) apperrors.Error {
		return m.UpdateComponentNature(ctx, n)
	},
	delete: func(ctx context.Context, m db.CatalogManager, id uuid.UUID) apperrors.Error {
		return m.DeleteComponentNature(ctx, id)
	},
}

var componentStatusResource = &catalogResource[catalog.ComponentStatus]{
	kind:  KindComponentStatuses,
	entry: func(s *catalog.ComponentStatus) *catalog.CodedEntry { return &s.CodedEntry },
	create: func(ctx context.Context, m db.CatalogManager, s *catalog.ComponentStatus) apperrors.Error {
		return m.CreateComponentStatus(ctx, s)
	},
	getByID: func(ctx context.Context, m db.CatalogManager, id uuid.UUID) (*catalog.ComponentStatus, apperrors.Error) {
		return m.GetComponentStatus(ctx, id)
	},
	getByCode: func(ctx context.Context, m db.CatalogManager, code string) (*catalog.ComponentStatus, apperrors.Error) {
		return m.GetComponentStatusByCode(ctx, code)
	},
	list: func(ctx context.Context, m db.CatalogManager, activeOnly bool) ([]*catalog.ComponentStatus, apperrors.Error) {
		return m.ListComponentStatuses(ctx, activeOnly)
	},
	update: func(ctx context.Context, m db.CatalogManager, s *catalog.ComponentStatus) apperrors.Error {
		return m.UpdateComponentStatus(ctx, s)
	},
	delete: func(ctx context.Context, m db.CatalogManager, id uuid.UUID) apperrors.Error {
		return m.DeleteComponentStatus(ctx, id)
	},
}

var installationStatusResource = &catalogResource[catalog.InstallationStatus]{
	kind:  KindInstallationStatuses,
	entry: func(s *catalog.InstallationStatus) *catalog.CodedEntry { return &s.CodedEntry },
	create: func(ctx context.Context, m db.CatalogManager, s *catalog.InstallationStatus) apperrors.Error {
		return m.CreateInstallationStatus(ctx, s)
	},
	getByID: func(ctx context.Context, m db.CatalogManager, id uuid.UUID) (*catalog.InstallationStatus, apperrors.Error) {
		return m.GetInstallationStatus(ctx, id)
	},
	getByCode: func(ctx context.Context, m db.CatalogManager, code string) (*catalog.InstallationStatus, apperrors.Error) {
		return m.GetInstallationStatusByCode(ctx, code)
	},
	list: func(ctx context.Context, m db.CatalogManager, activeOnly bool) ([]*catalog.InstallationStatus, apperrors.Error) {
		return m.ListInstallationStatuses(ctx, activeOnly)
	},
	update: func(ctx context.Context, m db.CatalogManager, s *catalog.InstallationStatus) apperrors.Error {
		return m.UpdateInstallationStatus(ctx, s)
	},
	delete: func(ctx context.Context, m db.CatalogManager, id uuid.UUID) apperrors.Error {
		return m.DeleteInstallationStatus(ctx, id)
	},
}

var installableTypeResource = &catalogResource[catalog.InstallableType]{
	kind:  KindInstallableTypes,
	entry: func(t *catalog.InstallableType) *catalog.CodedEntry { return &t.CodedEntry },
	create: func(ctx context.Context, m db.CatalogManager, t *catalog.InstallableType) apperrors.Error {
		return m.CreateInstallableType(ctx, t)
	},
	getByID: func(ctx context.Context, m db.CatalogManager, id uuid.UUID) (*catalog.InstallableType, apperrors.Error) {
		return m.GetInstallableType(ctx, id)
	},
	getByCode: func(ctx context.Context, m db.CatalogManager, code string) (*catalog.InstallableType, apperrors.Error) {
		return m.GetInstallableTypeByCode(ctx, code)
	},
	list: func(ctx context.Context, m db.CatalogManager, activeOnly bool) ([]*catalog.InstallableType, apperrors.Error) {
		return m.ListInstallableTypes(ctx, activeOnly)
	},
	update: func(ctx context.Context, m db.CatalogManager, t *catalog.InstallableType) apperrors.Error {
		return m.UpdateInstallableType(ctx, t)
	},
	delete: func(ctx context.Context, m db.CatalogManager, id uuid.UUID) apperrors.Error {
		return m.DeleteInstallableType(ctx, id)
	},
}

var locationTypeResource = &catalogResource[catalog.LocationType]{
	kind:  KindLocationTypes,
	entry: func(t *catalog.LocationType) *catalog.CodedEntry { return &t.CodedEntry },
	create: func(ctx context.Context, m db.CatalogManager, t *catalog.LocationType) apperrors.Error {
		return m.CreateLocationType(ctx, t)
	},
	getByID: func(ctx context.Context, m db.CatalogManager, id uuid.UUID) (*catalog.LocationType, apperrors.Error) {
		return m.GetLocationType(ctx, id)
	},
	getByCode: func(ctx context.Context, m db.CatalogManager, code string) (*catalog.LocationType, apperrors.Error) {
		return m.GetLocationTypeByCode(ctx, code)
	},
	list: func(ctx context.Context, m db.CatalogManager, activeOnly bool) ([]*catalog.LocationType, apperrors.Error) {
		return m.ListLocationTypes(ctx, activeOnly)
	},
	update: func(ctx context.Context, m db.CatalogManager, t *catalog.LocationType) apperrors.Error {
		return m.UpdateLocationType(ctx, t)
	},
	delete: func(ctx context.Context, m db.CatalogManager, id uuid.UUID) apperrors.Error {
		return m.DeleteLocationType(ctx, id)
	},
	beforeDelete: func(ctx context.Context, existing *catalog.LocationType) apperrors.Error {
		count, err := db.DB(ctx).CountLocationsOfType(ctx, existing.Code)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrCatalogEntryInUse.Msg("location type is still assigned to locations")
		}
		return nil
	},
}

var catalogResources = map[string]CatalogResource{
	KindComponentCategories:  componentCategoryResource,
	KindComponentTypes:       componentTypeResource,
	KindComponentModels:      componentModelResource,
	KindComponentNatures:     componentNatureResource,
	KindComponentStatuses:    componentStatusResource,
	KindInstallationStatuses: installationStatusResource,
	KindInstallableTypes:     installableTypeResource,
	KindLocationTypes:        locationTypeResource,
}

// CatalogResourceForKind resolves the resource manager for a catalog kind as
// it appears in the URL.
func CatalogResourceForKind(kind string) (CatalogResource, apperrors.Error) {
	r, ok := catalogResources[kind]
	if !ok {
		return nil, ErrUnknownCatalogKind.Msg(kind)
	}
	return r, nil
}

// CatalogKinds lists the registered catalog kinds.
func CatalogKinds() []string {
	kinds := make([]string, 0, len(catalogResources))
	for k := range catalogResources {
		kinds = append(kinds, k)
	}
	return kinds
}
