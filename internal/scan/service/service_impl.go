package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/config"
	itemdomain "github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/masteritem/domain"
	operatordomain "github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/operator/domain"
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/scan/domain"
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MaxPerPage is the hard ceiling on the row-level page size. Requests
// above it are rejected, not clamped.
const MaxPerPage = 500

const defaultPerPage = 5

// Locker serializes bulk invoice renames across instances. Optional;
// renames proceed unserialized without one.
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (string, bool, error)
	Release(ctx context.Context, key, token string) error
}

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Settings  *config.SettingsHolder
	Repo      domain.Repository
	Items     itemdomain.Repository
	Operators operatordomain.Repository
	Locker    Locker `optional:"true"`
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	genID     *snowflake.Node
	settings  *config.SettingsHolder
	repo      domain.Repository
	items     itemdomain.Repository
	operators operatordomain.Repository
	locker    Locker
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("scan.service"),
		genID:     p.GenID,
		settings:  p.Settings,
		repo:      p.Repo,
		items:     p.Items,
		operators: p.Operators,
		locker:    p.Locker,
	}
}

// Query answers the flexible search over scan records. The filter
// composition rules live on domain.Filter; the page-size ceiling is
// enforced here before any storage work.
func (s *Service) Query(ctx context.Context, req domain.QueryRequest) (pagination.Page[domain.ScanRecord], error) {
	page := req.Page.Normalize(defaultPerPage)
	if page.PerPage > MaxPerPage {
		return pagination.Page[domain.ScanRecord]{}, domain.ErrLimitExceeded
	}

	filter := req.Filter
	filter.SetMatchAny = s.settings.Current().Filters.SetMatchAny

	rows, total, err := s.repo.List(ctx, s.db, filter, page.Offset(), page.PerPage)
	if err != nil {
		return pagination.Page[domain.ScanRecord]{}, fmt.Errorf("list scanned items: %w", err)
	}
	return pagination.NewPage(rows, total, page), nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.ScanRecord, error) {
	row, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("find scanned item: %w", err)
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	return row, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, s.db, id)
	if err != nil {
		return fmt.Errorf("delete scanned item: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
