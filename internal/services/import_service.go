package services

import (
	"context"
	"fmt"
	"time"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"

	"github.com/yukikurage/home-inventory-api/internal/models"
	"github.com/yukikurage/home-inventory-api/internal/repository"
)

// Backup is the nested home > room > item document used by import and
// export.
type Backup struct {
	ExportedAt *time.Time    `json:"exported_at,omitempty"`
	Homes      []models.Home `json:"homes"`
}

// ImportResult counts what an import created.
type ImportResult struct {
	HomesCreated int   `json:"homes_created"`
	HomesSkipped int   `json:"homes_skipped"`
	Rooms        int64 `json:"rooms"`
	Items        int64 `json:"items"`
	Tasks        int64 `json:"tasks"`
	Paints       int64 `json:"paints"`
	Floorings    int64 `json:"floorings"`
}

// ImportService restores and exports whole homes.
type ImportService struct {
	txService  *TransactionService
	importRepo repository.ImportRepository
	homeRepo   repository.HomeRepository
	now        func() time.Time
	log        logger.Logger
}

// NewImportService creates a new ImportService.
func NewImportService(txService *TransactionService, importRepo repository.ImportRepository, homeRepo repository.HomeRepository) *ImportService {
	return &ImportService{
		txService:  txService,
		importRepo: importRepo,
		homeRepo:   homeRepo,
		now:        time.Now,
		log:        logger.New("importService"),
	}
}

// Import creates every home in the backup that does not exist yet, owned by
// userID. Children keep their ids and timestamps; their home and room ids are
// taken from the nesting, not from the document. Tasks are created by and
// assigned to the importing user. Everything happens in one transaction.
// A child id that is already stored, or repeated in the document, fails the
// whole import with ErrImportConflict.
func (s *ImportService) Import(ctx context.Context, userID string, backup Backup) (*ImportResult, error) {
	log := s.log.Function("Import").TraceFromContext(ctx)

	result := &ImportResult{}
	err := s.txService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		repo := s.importRepo.WithTx(tx)

		for _, home := range backup.Homes {
			if home.ID != "" {
				exists, err := repo.HomeExists(ctx, home.ID)
				if err != nil {
					return err
				}
				if exists {
					result.HomesSkipped++
					continue
				}
			}

			batch := flatten(home, userID)
			if err := batch.checkIDs(ctx, repo); err != nil {
				return err
			}
			if _, err := repo.Insert(ctx, batch.home); err != nil {
				return err
			}
			result.HomesCreated++

			for _, step := range []struct {
				records any
				size    int
				counter *int64
			}{
				{&batch.rooms, len(batch.rooms), &result.Rooms},
				{&batch.items, len(batch.items), &result.Items},
				{&batch.tasks, len(batch.tasks), &result.Tasks},
				{&batch.paints, len(batch.paints), &result.Paints},
				{&batch.floorings, len(batch.floorings), &result.Floorings},
			} {
				if step.size == 0 {
					continue
				}
				n, err := repo.Insert(ctx, step.records)
				if err != nil {
					return err
				}
				*step.counter += n
			}
		}
		return nil
	})
	if err != nil {
		return nil, storeErr("import", err)
	}

	log.Info("Import finished",
		"userID", userID,
		"homesCreated", result.HomesCreated,
		"homesSkipped", result.HomesSkipped,
		"tasks", result.Tasks,
	)
	return result, nil
}

// Export returns every home the user owns with its full contents.
func (s *ImportService) Export(ctx context.Context, userID string) (*Backup, error) {
	homes, err := s.homeRepo.ListOwned(ctx, userID)
	if err != nil {
		return nil, storeErr("export", err)
	}
	exportedAt := s.now()
	return &Backup{ExportedAt: &exportedAt, Homes: homes}, nil
}

type importBatch struct {
	home      *models.Home
	rooms     []models.Room
	items     []models.Item
	tasks     []models.Task
	paints    []models.Paint
	floorings []models.Flooring
}

// checkIDs rejects a batch whose child ids repeat or already exist.
func (b importBatch) checkIDs(ctx context.Context, repo repository.ImportRepository) error {
	tables := []struct {
		name  string
		model any
		ids   []string
	}{
		{"room", &models.Room{}, nil},
		{"item", &models.Item{}, nil},
		{"task", &models.Task{}, nil},
		{"paint", &models.Paint{}, nil},
		{"flooring", &models.Flooring{}, nil},
	}
	for _, r := range b.rooms {
		tables[0].ids = append(tables[0].ids, r.ID)
	}
	for _, i := range b.items {
		tables[1].ids = append(tables[1].ids, i.ID)
	}
	for _, t := range b.tasks {
		tables[2].ids = append(tables[2].ids, t.ID)
	}
	for _, p := range b.paints {
		tables[3].ids = append(tables[3].ids, p.ID)
	}
	for _, f := range b.floorings {
		tables[4].ids = append(tables[4].ids, f.ID)
	}

	for _, table := range tables {
		seen := make(map[string]struct{}, len(table.ids))
		for _, id := range table.ids {
			if _, dup := seen[id]; dup {
				return fmt.Errorf("%w: %s %q appears twice", ErrImportConflict, table.name, id)
			}
			seen[id] = struct{}{}
		}

		existing, err := repo.ExistingIDs(ctx, table.model, table.ids)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return fmt.Errorf("%w: %s %q", ErrImportConflict, table.name, existing[0])
		}
	}
	return nil
}

// flatten turns one nested home into per-table rows with ancestors filled in.
func flatten(src models.Home, userID string) importBatch {
	home := src
	home.UserID = userID
	home.Owner, home.Shares, home.Rooms, home.Tasks, home.Paints, home.Floorings = nil, nil, nil, nil, nil, nil
	// Children need the id before the home row is written.
	home.EnsureID()

	batch := importBatch{home: &home}
	addTask := func(t models.Task, roomID, itemID *string) {
		t.HomeID = &home.ID
		t.RoomID = roomID
		t.ItemID = itemID
		t.CreatorID = userID
		t.AssigneeID = &userID
		t.Creator, t.Assignee, t.Home, t.Room, t.Item = nil, nil, nil, nil, nil
		t.EnsureID()
		if t.Status == "" {
			t.Status = models.TaskStatusPending
		}
		if t.Priority == "" {
			t.Priority = models.TaskPriorityMedium
		}
		batch.tasks = append(batch.tasks, t)
	}

	for _, t := range src.Tasks {
		addTask(t, nil, nil)
	}
	for _, p := range src.Paints {
		p.HomeID, p.RoomID = home.ID, nil
		p.EnsureID()
		batch.paints = append(batch.paints, p)
	}
	for _, f := range src.Floorings {
		f.HomeID, f.RoomID = home.ID, nil
		f.EnsureID()
		batch.floorings = append(batch.floorings, f)
	}

	for _, srcRoom := range src.Rooms {
		room := srcRoom
		room.HomeID = home.ID
		room.Home, room.Items, room.Tasks, room.Paints, room.Floorings = nil, nil, nil, nil, nil
		roomID := room.EnsureID()
		batch.rooms = append(batch.rooms, room)

		for _, srcItem := range srcRoom.Items {
			item := srcItem
			item.RoomID = roomID
			item.HomeID = home.ID
			item.Room, item.Tasks = nil, nil
			itemID := item.EnsureID()
			batch.items = append(batch.items, item)

			for _, t := range srcItem.Tasks {
				addTask(t, &roomID, &itemID)
			}
		}

		for _, t := range srcRoom.Tasks {
			addTask(t, &roomID, nil)
		}
		for _, p := range srcRoom.Paints {
			p.HomeID, p.RoomID = home.ID, &roomID
			p.EnsureID()
			batch.paints = append(batch.paints, p)
		}
		for _, f := range srcRoom.Floorings {
			f.HomeID, f.RoomID = home.ID, &roomID
			f.EnsureID()
			batch.floorings = append(batch.floorings, f)
		}
	}

	return batch
}
