package flower

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/florachain/flora"
	"github.com/florachain/flora/errors"
)

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLenientReads makes Read return a zero value flower instead of
// failing with ErrOutOfRange when the index was never assigned.
func WithLenientReads() ServiceOption {
	return func(s *Service) {
		s.lenient = true
	}
}

// WithLogger attaches a logger. The default service is silent.
func WithLogger(logger zerolog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// Service is the registry front door. It serializes all operations and
// runs every mutation inside a cache wrap, so a failed operation leaves
// no partial writes behind.
type Service struct {
	mu      sync.Mutex
	ctrl    Controller
	db      flora.CacheableKVStore
	lenient bool
	logger  zerolog.Logger
}

// NewService returns a service persisting to db and settling purchases
// through the ledger.
func NewService(db flora.CacheableKVStore, ledger Ledger, opts ...ServiceOption) *Service {
	s := &Service{
		ctrl:   NewController(ledger),
		db:     db,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create registers a new flower owned by the caller and returns its index.
func (s *Service) Create(caller flora.Address, msg CreateFlowerMsg) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var index int64
	err := s.atomically(func(db flora.KVStore) error {
		var err error
		index, err = s.ctrl.Create(db, caller, msg)
		return err
	})
	if err != nil {
		s.logOp("create", caller, -1, err)
		return 0, err
	}
	s.logger.Info().Str("op", "create").Str("caller", caller.String()).
		Int64("index", index).Str("name", msg.Name).Msg("flower created")
	return index, nil
}

// Read returns a copy of the flower at the index. With lenient reads
// configured an unassigned index yields a zero value flower instead of
// ErrOutOfRange.
func (s *Service) Read(index int64) (*Flower, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.ctrl.Read(s.db, index)
	switch {
	case err == nil:
		return f, nil
	case s.lenient && ErrOutOfRange.Is(err):
		return &Flower{}, nil
	default:
		return nil, err
	}
}

// Count returns how many flowers exist in the registry.
func (s *Service) Count() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Count(s.db)
}

// Buy transfers the flower at the index to the caller against a ledger
// payment of the asking price.
func (s *Service) Buy(caller flora.Address, msg BuyFlowerMsg) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.atomically(func(db flora.KVStore) error {
		return s.ctrl.Buy(db, caller, msg)
	})
	s.logOp("buy", caller, msg.Index, err)
	return err
}

// Gift transfers the flower at the index to the recipient without payment.
func (s *Service) Gift(caller flora.Address, msg GiftFlowerMsg) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.atomically(func(db flora.KVStore) error {
		return s.ctrl.Gift(db, caller, msg)
	})
	s.logOp("gift", caller, msg.Index, err)
	return err
}

// ToggleSale flips the for sale flag of the flower at the index.
func (s *Service) ToggleSale(caller flora.Address, msg ToggleSaleMsg) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.atomically(func(db flora.KVStore) error {
		return s.ctrl.ToggleSale(db, caller, msg)
	})
	s.logOp("toggle_sale", caller, msg.Index, err)
	return err
}

// atomically runs fn against a cache wrap of the store and commits the
// writes only when fn succeeds. Panics inside fn are recovered into
// ErrPanic and discard as well.
func (s *Service) atomically(fn func(db flora.KVStore) error) (err error) {
	cache := s.db.CacheWrap()
	defer func() {
		if err != nil {
			cache.Discard()
			return
		}
		err = cache.Write()
	}()
	defer errors.Recover(&err)
	return fn(cache)
}

func (s *Service) logOp(op string, caller flora.Address, index int64, err error) {
	if err != nil {
		s.logger.Warn().Str("op", op).Str("caller", caller.String()).
			Int64("index", index).Err(err).Msg("operation failed")
		return
	}
	s.logger.Info().Str("op", op).Str("caller", caller.String()).
		Int64("index", index).Msg("operation applied")
}
