// Command seed populates the testimonials and clients tables with the
// site's published content. It is idempotent: a non-empty table is left
// untouched.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	clientsrepo "vocalfitness_backend/internal/clients/repository"
	testimonialsrepo "vocalfitness_backend/internal/testimonials/repository"
	"vocalfitness_backend/migrations"
	"vocalfitness_backend/platform/config"
	"vocalfitness_backend/platform/db"
	"vocalfitness_backend/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting seed", "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.RunMigrations(ctx, cfg, migrations.FS, "."); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return seedTestimonials(gctx, testimonialsrepo.New(pool), log) })
	g.Go(func() error { return seedClients(gctx, clientsrepo.New(pool), log) })
	if err := g.Wait(); err != nil {
		log.Error("failed to seed data", "error", err)
		panic("failed to seed data: " + err.Error())
	}

	log.Info("seeding complete")
}

func seedTestimonials(ctx context.Context, repo *testimonialsrepo.Repo, log *logger.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info("testimonials table not empty, skipping", "count", count)
		return nil
	}

	for _, t := range seedTestimonialData {
		t.ID = uuid.New()
		t.CreatedAt = time.Now().UTC()
		if err := repo.Insert(ctx, &t); err != nil {
			return err
		}
	}
	log.Info("seeded testimonials", "count", len(seedTestimonialData))
	return nil
}

func seedClients(ctx context.Context, repo *clientsrepo.Repo, log *logger.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info("clients table not empty, skipping", "count", count)
		return nil
	}

	for _, c := range seedClientData {
		c.ID = uuid.New()
		c.CreatedAt = time.Now().UTC()
		if err := repo.Insert(ctx, &c); err != nil {
			return err
		}
	}
	log.Info("seeded clients", "count", len(seedClientData))
	return nil
}
