package invmanager

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/switchscope/switchscope/internal/common/apperrors"
	"github.com/switchscope/switchscope/internal/invsrv/catalog"
	"github.com/switchscope/switchscope/internal/invsrv/db"
	"github.com/switchscope/switchscope/internal/invsrv/db/dberror"
)

// SeedDefaultCatalogs loads the built-in catalog entries into an empty or
// partially seeded database. Entries whose code already exists are left
// untouched, so the seeder is safe to run on every startup.
func SeedDefaultCatalogs(ctx context.Context) apperrors.Error {
	m := db.DB(ctx)
	created := 0

	seed := func(label, code string, insert func() apperrors.Error) apperrors.Error {
		err := insert()
		if err == nil {
			created++
			return nil
		}
		if errors.Is(err, dberror.ErrAlreadyExists) {
			return nil
		}
		return ErrInventoryError.Msg("failed to seed " + label + " " + code).Err(err)
	}

	for _, c := range catalog.DefaultComponentCategories() {
		c := c
		if err := seed("component category", c.Code, func() apperrors.Error {
			return m.CreateComponentCategory(ctx, c)
		}); err != nil {
			return err
		}
	}
	for _, t := range catalog.DefaultComponentTypes() {
		t := t
		if err := seed("component type", t.Code, func() apperrors.Error {
			return m.CreateComponentType(ctx, t)
		}); err != nil {
			return err
		}
	}
	for _, n := range catalog.DefaultComponentNatures() {
		n := n
		if err := seed("component nature", n.Code, func() apperrors.Error {
			return m.CreateComponentNature(ctx, n)
		}); err != nil {
			return err
		}
	}
	for _, s := range catalog.DefaultComponentStatuses() {
		s := s
		if err := seed("component status", s.Code, func() apperrors.Error {
			return m.CreateComponentStatus(ctx, s)
		}); err != nil {
			return err
		}
	}
	for _, s := range catalog.DefaultInstallationStatuses() {
		s := s
		if err := seed("installation status", s.Code, func() apperrors.Error {
			return m.CreateInstallationStatus(ctx, s)
		}); err != nil {
			return err
		}
	}
	for _, t := range catalog.DefaultInstallableTypes() {
		t := t
		if err := seed("installable type", t.Code, func() apperrors.Error {
			return m.CreateInstallableType(ctx, t)
		}); err != nil {
			return err
		}
	}
	for _, t := range catalog.DefaultLocationTypes() {
		t := t
		if err := seed("location type", t.Code, func() apperrors.Error {
			return m.CreateLocationType(ctx, t)
		}); err != nil {
			return err
		}
	}

	if created > 0 {
		log.Ctx(ctx).Info().Int("entries", created).Msg("seeded default catalogs")
	}
	return nil
}
