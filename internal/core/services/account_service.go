package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/treasury_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/dto"
	"github.com/SscSPs/treasury_ledger/internal/platform/config"
	"github.com/SscSPs/treasury_ledger/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

const defaultEntryPageSize = 100

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	store portsrepo.TreasuryStore
}

// NewAccountService creates a new account service.
func NewAccountService(store portsrepo.TreasuryStore) portssvc.AccountSvcFacade {
	return &accountService{store: store}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) GetAccount(ctx context.Context, key string) (*domain.Account, error) {
	acc, err := s.store.FindAccountByKey(ctx, key)
	if err != nil {
		return nil, apperrors.Normalize(notFoundAs(err, apperrors.KindUnknownAccount, "unknown account %s", key))
	}
	return acc, nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.store.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, apperrors.Normalize(err)
	}
	return accounts, nil
}

// ListEntries returns one page of an account's ledger, oldest first.
func (s *accountService) ListEntries(ctx context.Context, accountKey string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	if err := dto.Validate(params); err != nil {
		return nil, apperrors.Normalize(err)
	}
	if params.From != nil && params.To != nil && params.To.Before(*params.From) {
		return nil, apperrors.Newf(apperrors.KindValidation, "to must not be before from")
	}
	if _, err := s.GetAccount(ctx, accountKey); err != nil {
		return nil, err
	}

	filter := portsrepo.EntryFilter{From: params.From, To: params.To, Limit: params.Limit}
	if filter.Limit == 0 {
		filter.Limit = defaultEntryPageSize
	}
	if params.NextToken != nil && *params.NextToken != "" {
		afterSeq, err := pagination.DecodeSeqToken(*params.NextToken)
		if err != nil {
			return nil, apperrors.NewAppError(apperrors.KindValidation, err.Error(), err)
		}
		filter.AfterSeq = afterSeq
	}

	// One extra row tells us whether another page exists.
	pageSize := filter.Limit
	filter.Limit++
	entries, err := s.store.ListEntriesByAccount(ctx, accountKey, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries", slog.String("account_key", accountKey))
		return nil, apperrors.Normalize(err)
	}

	resp := &dto.ListEntriesResponse{Entries: entries}
	if len(entries) > pageSize {
		resp.Entries = entries[:pageSize]
		token := pagination.EncodeSeqToken(resp.Entries[pageSize-1].Seq)
		resp.NextToken = &token
	}
	return resp, nil
}

// BootstrapCatalog validates the whole catalog before creating anything, so a
// bad entry never leaves a half-seeded store.
func (s *accountService) BootstrapCatalog(ctx context.Context, specs []config.AccountSpec) (int, error) {
	accounts := make([]domain.Account, 0, len(specs))
	seen := make(map[string]struct{}, len(specs))
	now := s.Now()

	for i, spec := range specs {
		acc, err := accountFromSpec(spec)
		if err != nil {
			return 0, apperrors.Normalize(fmt.Errorf("catalog entry %d: %w", i, err))
		}
		if _, dup := seen[acc.Key]; dup {
			return 0, apperrors.Newf(apperrors.KindValidation, "catalog entry %d: duplicate account key %s", i, acc.Key)
		}
		seen[acc.Key] = struct{}{}
		acc.Touch(domain.SystemActor, now)
		accounts = append(accounts, acc)
	}

	created, err := s.store.SeedAccounts(ctx, accounts)
	if err != nil {
		s.LogError(ctx, err, "Failed to seed account catalog")
		return 0, apperrors.Normalize(err)
	}
	s.LogInfo(ctx, "Account catalog bootstrapped",
		slog.Int("catalog_size", len(accounts)),
		slog.Int("created", created))
	return created, nil
}

func accountFromSpec(spec config.AccountSpec) (domain.Account, error) {
	key := strings.TrimSpace(spec.Key)
	if key == "" {
		return domain.Account{}, fmt.Errorf("%w: account key is required", apperrors.ErrValidation)
	}
	category := domain.AccountCategory(strings.ToLower(spec.Category))
	if !category.Valid() {
		return domain.Account{}, fmt.Errorf("%w: account %s has unknown category %q", apperrors.ErrValidation, key, spec.Category)
	}
	currency := strings.ToUpper(strings.TrimSpace(spec.Currency))
	if len(currency) != 3 {
		return domain.Account{}, fmt.Errorf("%w: account %s has invalid currency %q", apperrors.ErrValidation, key, spec.Currency)
	}
	if spec.AllowOverdraft && category != domain.CategoryVault {
		return domain.Account{}, fmt.Errorf("%w: account %s: only vaults may allow overdraft", apperrors.ErrValidation, key)
	}

	initial, err := parseAmount(key, "initial_balance", spec.InitialBalance, true)
	if err != nil {
		return domain.Account{}, err
	}
	inflow, err := parseAmount(key, "opening_inflow", spec.OpeningInflow, false)
	if err != nil {
		return domain.Account{}, err
	}
	outflow, err := parseAmount(key, "opening_outflow", spec.OpeningOutflow, false)
	if err != nil {
		return domain.Account{}, err
	}

	name := spec.Name
	if name == "" {
		name = key
	}
	acc := domain.Account{
		Key:            key,
		Name:           name,
		Category:       category,
		CurrencyCode:   currency,
		InitialBalance: initial,
		OpeningInflow:  inflow,
		OpeningOutflow: outflow,
		IsActive:       true,
		AllowOverdraft: spec.AllowOverdraft,
	}
	acc.ResetProjection()
	if acc.CurrentBalance.IsNegative() && !acc.CanGoNegative() {
		return domain.Account{}, fmt.Errorf("%w: account %s opens with negative balance %s", apperrors.ErrValidation, key, acc.CurrentBalance)
	}
	return acc, nil
}

func parseAmount(key, field, raw string, signed bool) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: account %s %s %q is not a decimal", apperrors.ErrValidation, key, field, raw)
	}
	if !domain.IsWholeCents(v) {
		return decimal.Decimal{}, fmt.Errorf("%w: account %s %s %s has sub-cent precision", apperrors.ErrValidation, key, field, raw)
	}
	if !signed && v.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: account %s %s must not be negative", apperrors.ErrValidation, key, field)
	}
	return v, nil
}
