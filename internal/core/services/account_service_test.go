package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/personal_os/internal/apperrors"
	"github.com/SscSPs/personal_os/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_os/internal/core/ports/repositories"
	"github.com/SscSPs/personal_os/internal/core/services"
	"github.com/SscSPs/personal_os/internal/dto"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	ledgerSuite
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) primaryIDs() []int64 {
	assets, err := s.svc.Asset.ListAssets(s.ctx)
	s.Require().NoError(err)
	var ids []int64
	for _, a := range assets {
		if a.IsPrimary {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

func (s *AccountServiceTestSuite) TestCreateAsset_DefaultsCurrency() {
	asset := s.createAsset("Wallet", "0", false)
	s.Equal(domain.DefaultCurrency, asset.Currency)
	s.Equal(fixedNow, asset.CreatedAt)
	s.Nil(asset.UpdatedAt)

	entries := s.history(domain.EntityAsset)
	s.Require().Len(entries, 1)
	s.Equal(domain.AuditCreated, entries[0].Action)
	s.Nil(entries[0].BeforeJSON)
	s.Require().NotNil(entries[0].AfterJSON)

	var after map[string]any
	s.Require().NoError(json.Unmarshal([]byte(*entries[0].AfterJSON), &after))
	s.Equal("Wallet", after["name"])
}

func (s *AccountServiceTestSuite) TestCreateAsset_RejectsBlankName() {
	_, err := s.svc.Asset.CreateAsset(s.ctx, dto.CreateAssetRequest{Name: "   ", AssetType: "cash"})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AccountServiceTestSuite) TestPrimaryStaysSingle() {
	bank := s.createAsset("Bank", "0", true)
	cash := s.createAsset("Cash", "0", true)
	s.Equal([]int64{cash.ID}, s.primaryIDs())

	_, err := s.svc.Asset.UpdateAsset(s.ctx, bank.ID, dto.UpdateAssetRequest{IsPrimary: dto.Some(true)})
	s.Require().NoError(err)
	s.Equal([]int64{bank.ID}, s.primaryIDs())

	_, err = s.svc.Asset.SetPrimaryAsset(s.ctx, cash.ID)
	s.Require().NoError(err)
	s.Equal([]int64{cash.ID}, s.primaryIDs())

	_, err = s.svc.Asset.SetPrimaryAsset(s.ctx, 999)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.Equal([]int64{cash.ID}, s.primaryIDs())
}

func (s *AccountServiceTestSuite) TestUpdateAsset_PatchSemantics() {
	created, err := s.svc.Asset.CreateAsset(s.ctx, dto.CreateAssetRequest{
		Name:      "Bank",
		AssetType: "bank",
		Notes:     ptr("salary account"),
	})
	s.Require().NoError(err)

	updated, err := s.svc.Asset.UpdateAsset(s.ctx, created.ID, dto.UpdateAssetRequest{
		Name:  dto.Some("Main Bank"),
		Notes: dto.Null[string](),
	})
	s.Require().NoError(err)
	s.Equal("Main Bank", updated.Name)
	s.Equal("bank", updated.AssetType)
	s.Nil(updated.Notes)
	s.Require().NotNil(updated.UpdatedAt)
	s.Equal(fixedNow, *updated.UpdatedAt)

	_, err = s.svc.Asset.UpdateAsset(s.ctx, created.ID, dto.UpdateAssetRequest{Name: dto.Null[string]()})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Asset.UpdateAsset(s.ctx, 12345, dto.UpdateAssetRequest{Name: dto.Some("x")})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *AccountServiceTestSuite) TestEnsurePrimaryAsset() {
	primary, err := s.svc.Asset.EnsurePrimaryAsset(s.ctx)
	s.Require().NoError(err)
	s.Equal(domain.DefaultPrimaryAssetName, primary.Name)

	again, err := s.svc.Asset.EnsurePrimaryAsset(s.ctx)
	s.Require().NoError(err)
	s.Equal(primary.ID, again.ID)
}

func (s *AccountServiceTestSuite) TestUpdateLiability() {
	card := s.createLiability("Card", "1000")

	updated, err := s.svc.Liability.UpdateLiability(s.ctx, card.ID, dto.UpdateLiabilityRequest{
		DueDay:      dto.Some(5),
		CreditLimit: dto.Some(dec("50000")),
	})
	s.Require().NoError(err)
	s.Require().NotNil(updated.DueDay)
	s.Equal(5, *updated.DueDay)
	s.True(updated.Balance.Equal(dec("1000")))

	_, err = s.svc.Liability.UpdateLiability(s.ctx, card.ID, dto.UpdateLiabilityRequest{DueDay: dto.Some(32)})
	s.ErrorIs(err, apperrors.ErrValidation)

	entries := s.history(domain.EntityLiability)
	s.Require().Len(entries, 2)
	s.Equal(domain.AuditUpdated, entries[0].Action)
}

func (s *AccountServiceTestSuite) TestHistoryClampsWindow() {
	for _, name := range []string{"A", "B", "C"} {
		s.createAsset(name, "0", false)
	}

	one, err := s.svc.Audit.ListHistory(s.ctx, domain.AuditFilter{Limit: 0})
	s.Require().NoError(err)
	s.Len(one, 1)

	all, err := s.svc.Audit.ListHistory(s.ctx, domain.AuditFilter{Limit: 5000, Offset: -3})
	s.Require().NoError(err)
	s.Len(all, 3)

	byEntity, err := s.svc.Audit.ListHistory(s.ctx, domain.AuditFilter{
		EntityType: domain.EntityAsset,
		EntityID:   all[0].EntityID,
		Limit:      10,
	})
	s.Require().NoError(err)
	s.Len(byEntity, 1)
}

// callRecorder wraps the transactional repositories and records the order of
// lock and write calls made through them.
type callRecorder struct {
	inner portsrepo.UnitOfWork
	calls *[]string
}

func (u callRecorder) WithinTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.RepositoryProvider) error) error {
	return u.inner.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		repos.AssetRepo = recordingAssets{AssetRepositoryFacade: repos.AssetRepo, calls: u.calls}
		repos.LiabilityRepo = recordingLiabilities{LiabilityRepositoryFacade: repos.LiabilityRepo, calls: u.calls}
		return fn(ctx, repos)
	})
}

type recordingAssets struct {
	portsrepo.AssetRepositoryFacade
	calls *[]string
}

func (r recordingAssets) FindAssetsByIDsForUpdate(ctx context.Context, ids []int64) (map[int64]domain.Asset, error) {
	*r.calls = append(*r.calls, "lock asset")
	return r.AssetRepositoryFacade.FindAssetsByIDsForUpdate(ctx, ids)
}

func (r recordingAssets) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	*r.calls = append(*r.calls, "update asset")
	return r.AssetRepositoryFacade.UpdateAsset(ctx, asset)
}

type recordingLiabilities struct {
	portsrepo.LiabilityRepositoryFacade
	calls *[]string
}

func (r recordingLiabilities) FindLiabilitiesByIDsForUpdate(ctx context.Context, ids []int64) (map[int64]domain.Liability, error) {
	*r.calls = append(*r.calls, "lock liability")
	return r.LiabilityRepositoryFacade.FindLiabilitiesByIDsForUpdate(ctx, ids)
}

func (r recordingLiabilities) UpdateLiability(ctx context.Context, liability domain.Liability) error {
	*r.calls = append(*r.calls, "update liability")
	return r.LiabilityRepositoryFacade.UpdateLiability(ctx, liability)
}

func (s *AccountServiceTestSuite) TestUpdatesLockTheRowBeforeWriting() {
	wallet := s.createAsset("Wallet", "100", true)
	card := s.createLiability("Card", "300")

	var calls []string
	uow := callRecorder{inner: s.repos.UnitOfWork, calls: &calls}
	clock := services.WithClock(func() time.Time { return fixedNow })
	assets := services.NewAssetService(s.repos.AssetRepo, uow, clock)
	liabilities := services.NewLiabilityService(s.repos.LiabilityRepo, uow, clock)

	_, err := assets.UpdateAsset(s.ctx, wallet.ID, dto.UpdateAssetRequest{Name: dto.Some("Main wallet")})
	s.Require().NoError(err)
	_, err = liabilities.UpdateLiability(s.ctx, card.ID, dto.UpdateLiabilityRequest{Name: dto.Some("Visa")})
	s.Require().NoError(err)

	s.Equal([]string{"lock asset", "update asset", "lock liability", "update liability"}, calls)
}

func (s *AccountServiceTestSuite) TestRenameKeepsPostedBalance() {
	wallet := s.createAsset("Wallet", "100", true)
	_, err := s.svc.Transaction.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		TxnType:      domain.TxnIncome,
		Amount:       dec("50"),
		Category:     "Gift",
		TransactedAt: fixedNow,
	})
	s.Require().NoError(err)

	renamed, err := s.svc.Asset.UpdateAsset(s.ctx, wallet.ID, dto.UpdateAssetRequest{Name: dto.Some("Main wallet")})
	s.Require().NoError(err)
	s.True(renamed.Balance.Equal(dec("150")))
	s.assertAssetBalance(wallet.ID, "150")
}

func (s *AccountServiceTestSuite) TestBalancesRejectSubCentPrecision() {
	_, err := s.svc.Asset.CreateAsset(s.ctx, dto.CreateAssetRequest{Name: "Wallet", AssetType: "cash", Balance: dec("10.005")})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Liability.CreateLiability(s.ctx, dto.CreateLiabilityRequest{Name: "Card", LiabilityType: "credit_card", Balance: dec("0.001")})
	s.ErrorIs(err, apperrors.ErrValidation)

	wallet := s.createAsset("Wallet", "10.50", false)
	_, err = s.svc.Asset.UpdateAsset(s.ctx, wallet.ID, dto.UpdateAssetRequest{Balance: dto.Some(dec("3.333"))})
	s.ErrorIs(err, apperrors.ErrValidation)
	s.assertAssetBalance(wallet.ID, "10.5")
}
