package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/handypro/connect-api/internal/core/domain"
	"github.com/handypro/connect-api/internal/core/ports"
)

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, &domain.User{Email: "a@example.com"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := repo.Create(ctx, &domain.User{Email: "a@example.com"}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserRepository_ConcurrentCreateUniqueIDs(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	const n = 64
	var wg sync.WaitGroup
	ids := make(chan int64, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u, err := repo.Create(ctx, &domain.User{Email: fmt.Sprintf("user%d@example.com", i)})
			if err != nil {
				t.Errorf("create %d: %v", i, err)
				return
			}
			ids <- u.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d assigned under concurrent writers", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d unique ids, got %d", n, len(seen))
	}
}

func TestUserRepository_FindReturnsCopies(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	created, _ := repo.Create(ctx, &domain.User{Email: "a@example.com", FullName: "Original"})

	fetched, _ := repo.FindByEmail(ctx, "a@example.com")
	fetched.FullName = "Mutated"

	again, _ := repo.FindByID(ctx, created.ID)
	if again.FullName != "Original" {
		t.Fatal("repository must not expose internal state to callers")
	}
}

func TestJobRepository_FilterByCustomerAndStatus(t *testing.T) {
	repo := NewJobRepository()
	ctx := context.Background()

	j1, _ := repo.Create(ctx, &domain.Job{CustomerID: 1, Status: domain.JobStatusOpen})
	_, _ = repo.Create(ctx, &domain.Job{CustomerID: 2, Status: domain.JobStatusOpen})
	_, _ = repo.Create(ctx, &domain.Job{CustomerID: 1, Status: domain.JobStatusCancelled})

	own, err := repo.List(ctx, ports.JobFilter{CustomerID: 1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(own) != 2 {
		t.Fatalf("expected 2 jobs for customer 1, got %d", len(own))
	}

	open, _ := repo.List(ctx, ports.JobFilter{CustomerID: 1, Status: domain.JobStatusOpen})
	if len(open) != 1 || open[0].ID != j1.ID {
		t.Fatalf("expected only job %d, got %d jobs", j1.ID, len(open))
	}
}

func TestJobRepository_UpdateStatus(t *testing.T) {
	repo := NewJobRepository()
	ctx := context.Background()

	job, _ := repo.Create(ctx, &domain.Job{CustomerID: 1, Status: domain.JobStatusOpen})

	updated, err := repo.UpdateStatus(ctx, job.ID, domain.JobStatusQuoted)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != domain.JobStatusQuoted {
		t.Fatalf("status = %s, want quoted", updated.Status)
	}

	if _, err := repo.UpdateStatus(ctx, 404, domain.JobStatusQuoted); err != domain.ErrJobNotFound {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestQuoteRepository_FilterByProfessional(t *testing.T) {
	repo := NewQuoteRepository()
	ctx := context.Background()

	_, _ = repo.Create(ctx, &domain.Quote{JobID: 1, ProfessionalID: 5})
	_, _ = repo.Create(ctx, &domain.Quote{JobID: 1, ProfessionalID: 6})
	_, _ = repo.Create(ctx, &domain.Quote{JobID: 2, ProfessionalID: 5})

	quotes, err := repo.List(ctx, ports.QuoteFilter{ProfessionalID: 5})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(quotes))
	}
}
