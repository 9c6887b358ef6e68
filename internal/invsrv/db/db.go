// Package db provides database interfaces and implementations for the
// inventory service. It defines three main interfaces:
// - CatalogManager: Handles the catalog tables that drive the type system
// - InventoryManager: Manages components, ports, installations, and locations
// - ConnectionManager: Manages database connections
package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/switchscope/switchscope/internal/common/apperrors"
	"github.com/switchscope/switchscope/internal/common/uuid"
	"github.com/switchscope/switchscope/internal/invsrv/catalog"
	"github.com/switchscope/switchscope/internal/invsrv/db/dbmanager"
	"github.com/switchscope/switchscope/internal/invsrv/db/models"
	"github.com/switchscope/switchscope/internal/invsrv/db/postgresql"
)

// CatalogManager handles all catalog table operations. All operations require
// a valid context and may return apperrors.Error for various failure cases.
// Code lookups are case-insensitive.
type CatalogManager interface {
	// Component Category
	CreateComponentCategory(ctx context.Context, c *catalog.ComponentCategory) apperrors.Error
	GetComponentCategory(ctx context.Context, id uuid.UUID) (*catalog.ComponentCategory, apperrors.Error)
	GetComponentCategoryByCode(ctx context.Context, code string) (*catalog.ComponentCategory, apperrors.Error)
	ListComponentCategories(ctx context.Context, activeOnly bool) ([]*catalog.ComponentCategory, apperrors.Error)
	UpdateComponentCategory(ctx context.Context, c *catalog.ComponentCategory) apperrors.Error
	DeleteComponentCategory(ctx context.Context, id uuid.UUID) apperrors.Error

	// Component Type
	CreateComponentType(ctx context.Context, t *catalog.ComponentType) apperrors.Error
	GetComponentType(ctx context.Context, id uuid.UUID) (*catalog.ComponentType, apperrors.Error)
	GetComponentTypeByCode(ctx context.Context, code string) (*catalog.ComponentType, apperrors.Error)
	ListComponentTypes(ctx context.Context, activeOnly bool) ([]*catalog.ComponentType, apperrors.Error)
	UpdateComponentType(ctx context.Context, t *catalog.ComponentType) apperrors.Error
	DeleteComponentType(ctx context.Context, id uuid.UUID) apperrors.Error
	CountActiveTypesInCategory(ctx context.Context, categoryCode string) (int, apperrors.Error)

	// Component Model
	CreateComponentModel(ctx context.Context, m *catalog.ComponentModel) apperrors.Error
	GetComponentModel(ctx context.Context, id uuid.UUID) (*catalog.ComponentModel, apperrors.Error)
	GetComponentModelByCode(ctx context.Context, code string) (*catalog.ComponentModel, apperrors.Error)
	ListComponentModels(ctx context.Context, activeOnly bool) ([]*catalog.ComponentModel, apperrors.Error)
	UpdateComponentModel(ctx context.Context, m *catalog.ComponentModel) apperrors.Error
	DeleteComponentModel(ctx context.Context, id uuid.UUID) apperrors.Error

	// Component Nature
	CreateComponentNature(ctx context.Context, n *catalog.ComponentNature) apperrors.Error
	GetComponentNature(ctx context.Context, id uuid.UUID) (*catalog.ComponentNature, apperrors.Error)
	GetComponentNatureByCode(ctx context.Context, code string) (*catalog.ComponentNature, apperrors.Error)
	ListComponentNatures(ctx context.Context, activeOnly bool) ([]*catalog.ComponentNature, apperrors.Error)
	UpdateComponentNature(ctx context.Context, n *catalog.ComponentNature) apperrors.Error
	DeleteComponentNature(ctx context.Context, id uuid.UUID) apperrors.Error

	// Component Status
	CreateComponentStatus(ctx context.Context, s *catalog.ComponentStatus) apperrors.Error
	GetComponentStatus(ctx context.Context, id uuid.UUID) (*catalog.ComponentStatus, apperrors.Error)
	GetComponentStatusByCode(ctx context.Context, code string) (*catalog.ComponentStatus, apperrors.Error)
	ListComponentStatuses(ctx context.Context, activeOnly bool) ([]*catalog.ComponentStatus, apperrors.Error)
	UpdateComponentStatus(ctx context.Context, s *catalog.ComponentStatus) apperrors.Error
	DeleteComponentStatus(ctx context.Context, id uuid.UUID) apperrors.Error

	// Installation Status
	CreateInstallationStatus(ctx context.Context, s *catalog.InstallationStatus) apperrors.Error
	GetInstallationStatus(ctx context.Context, id uuid.UUID) (*catalog.InstallationStatus, apperrors.Error)
	GetInstallationStatusByCode(ctx context.Context, code string) (*catalog.InstallationStatus, apperrors.Error)
	ListInstallationStatuses(ctx context.Context, activeOnly bool) ([]*catalog.InstallationStatus, apperrors.Error)
	UpdateInstallationStatus(ctx context.Context, s *catalog.InstallationStatus) apperrors.Error
	DeleteInstallationStatus(ctx context.Context, id uuid.UUID) apperrors.Error

	// Installable Type
	CreateInstallableType(ctx context.Context, t *catalog.InstallableType) apperrors.Error
	GetInstallableType(ctx context.Context, id uuid.UUID) (*catalog.InstallableType, apperrors.Error)
	GetInstallableTypeByCode(ctx context.Context, code string) (*catalog.InstallableType, apperrors.Error)
	ListInstallableTypes(ctx context.Context, activeOnly bool) ([]*catalog.InstallableType, apperrors.Error)
	UpdateInstallableType(ctx context.Context, t *catalog.InstallableType) apperrors.Error
	DeleteInstallableType(ctx context.Context, id uuid.UUID) apperrors.Error

	// Location Type
	CreateLocationType(ctx context.Context, t *catalog.LocationType) apperrors.Error
	GetLocationType(ctx context.Context, id uuid.UUID) (*catalog.LocationType, apperrors.Error)
	GetLocationTypeByCode(ctx context.Context, code string) (*catalog.LocationType, apperrors.Error)
	ListLocationTypes(ctx context.Context, activeOnly bool) ([]*catalog.LocationType, apperrors.Error)
	UpdateLocationType(ctx context.Context, t *catalog.LocationType) apperrors.Error
	DeleteLocationType(ctx context.Context, id uuid.UUID) apperrors.Error
}

// InventoryManager handles components, ports, installations, and locations.
// All operations require a valid context and may return apperrors.Error for
// various failure cases. Guarded updates return ErrVersionMismatch when the
// row changed concurrently.
type InventoryManager interface {
	// Component
	CreateComponent(ctx context.Context, c *models.Component) apperrors.Error
	GetComponent(ctx context.Context, id uuid.UUID) (*models.Component, apperrors.Error)
	GetComponentBySerial(ctx context.Context, manufacturer, serialNumber string) (*models.Component, apperrors.Error)
	ListComponents(ctx context.Context, filter postgresql.ComponentFilter) ([]*models.Component, apperrors.Error)
	ListChildComponents(ctx context.Context, parentID uuid.UUID) ([]*models.Component, apperrors.Error)
	ListComponentAncestors(ctx context.Context, id uuid.UUID) ([]*models.Component, apperrors.Error)
	UpdateComponent(ctx context.Context, c *models.Component) apperrors.Error
	SetComponentStatus(ctx context.Context, id uuid.UUID, statusCode string) apperrors.Error
	UpdateComponentSecret(ctx context.Context, id uuid.UUID, sealed []byte) apperrors.Error
	DeleteComponent(ctx context.Context, id uuid.UUID) apperrors.Error
	CountChildComponents(ctx context.Context, parentID uuid.UUID) (int, apperrors.Error)
	CountComponentsOfType(ctx context.Context, typeCode string) (int, apperrors.Error)

	// Port
	CreatePort(ctx context.Context, p *models.Port) apperrors.Error
	GetPort(ctx context.Context, id uuid.UUID) (*models.Port, apperrors.Error)
	ListPortsByComponent(ctx context.Context, componentID uuid.UUID) ([]*models.Port, apperrors.Error)
	UpdatePort(ctx context.Context, p *models.Port) apperrors.Error
	DeletePort(ctx context.Context, id uuid.UUID) apperrors.Error

	// Installation
	CreateInstallation(ctx context.Context, i *models.Installation) apperrors.Error
	GetInstallation(ctx context.Context, id uuid.UUID) (*models.Installation, apperrors.Error)
	ListInstallations(ctx context.Context, filter postgresql.InstallationFilter) ([]*models.Installation, apperrors.Error)
	ListOccupiedRackSpans(ctx context.Context, componentID uuid.UUID) ([]models.RackSpan, apperrors.Error)
	ListAutoTransitionCandidates(ctx context.Context) ([]*models.Installation, apperrors.Error)
	UpdateInstallation(ctx context.Context, i *models.Installation) apperrors.Error
	DeleteInstallation(ctx context.Context, id uuid.UUID) apperrors.Error

	// Location
	CreateLocation(ctx context.Context, l *models.Location) apperrors.Error
	GetLocation(ctx context.Context, id uuid.UUID) (*models.Location, apperrors.Error)
	ListLocations(ctx context.Context, filter postgresql.LocationFilter) ([]*models.Location, apperrors.Error)
	ListLocationAncestors(ctx context.Context, id uuid.UUID) ([]*models.Location, apperrors.Error)
	UpdateLocation(ctx context.Context, l *models.Location) apperrors.Error
	DeleteLocation(ctx context.Context, id uuid.UUID) apperrors.Error
	CountChildLocations(ctx context.Context, parentID uuid.UUID) (int, apperrors.Error)
	CountEquipmentAtLocation(ctx context.Context, locationID uuid.UUID) (int, apperrors.Error)
	CountLocationsOfType(ctx context.Context, typeCode string) (int, apperrors.Error)
}

// ConnectionManager handles database connection lifecycle.
type ConnectionManager interface {
	// Close returns the connection to the pool.
	Close(ctx context.Context)
}

// Database interface combines all three managers into a single interface.
// This allows for a unified database access layer while maintaining
// separation of concerns.
type Database interface {
	CatalogManager
	InventoryManager
	ConnectionManager
}

var pool dbmanager.Pool

// Init initializes the database connection pool.
// It attempts to create a new database connection and logs any errors.
func Init() {
	ctx := log.Logger.WithContext(context.Background())
	pg := dbmanager.NewPool(ctx, "postgresql")
	if pg == nil {
		panic("unable to create db pool")
	}
	pool = pg
}

// Conn returns a new database connection from the pool.
// Returns an error if the connection cannot be established.
func Conn(ctx context.Context) (dbmanager.PooledConn, error) {
	if pool != nil {
		conn, err := pool.Conn(ctx)
		if err == nil {
			return conn, nil
		}
		log.Ctx(ctx).Error().Err(err).Msg("unable to get db connection")
		return nil, err
	}
	return nil, fmt.Errorf("database pool not initialized")
}

type ctxDbKeyType string

const ctxDbKey ctxDbKeyType = "SwitchScopeInventoryDb"

// ConnCtx adds a database connection to the context.
// Returns an error if the connection cannot be established.
func ConnCtx(ctx context.Context) (context.Context, error) {
	conn, err := Conn(ctx)
	if err != nil {
		return nil, err
	}
	return context.WithValue(ctx, ctxDbKey, conn), nil
}

type switchScopeDb struct {
	CatalogManager
	InventoryManager
	ConnectionManager
}

// DB returns a new database instance from the context.
// It expects a valid database connection in the context.
// Returns nil if no connection is found in the context.
func DB(ctx context.Context) Database {
	if conn, ok := ctx.Value(ctxDbKey).(dbmanager.PooledConn); ok {
		cm, im, con := postgresql.NewSwitchScopeDb(conn)
		return &switchScopeDb{
			CatalogManager:    cm,
			InventoryManager:  im,
			ConnectionManager: con,
		}
	}
	log.Ctx(ctx).Error().Msg("unable to get db connection from context")
	return nil
}
