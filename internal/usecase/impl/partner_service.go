package impl

import (
	"context"
	"log/slog"
	"strings"

	"partnerhub/internal/domain/entity"
	domainerrors "partnerhub/internal/domain/errors"
	"partnerhub/internal/domain/repository"
	"partnerhub/internal/domain/service"
	"partnerhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// shopSearchPageSize bounds the duplicate-name recovery search.
const shopSearchPageSize = 50

type partnerService struct {
	partnerRepo repository.PartnerRepository
	linkRepo    repository.ShopLinkRepository
	contactRepo repository.ContactRepository
	shops       service.WooShopClient
	logger      *slog.Logger
}

// NewPartnerService creates the partner reconciliation service. It keeps the
// local partner row and the remote Woo shop in step across two systems that
// share no transaction: the local row is authoritative, the remote side is
// best effort and self-healing.
func NewPartnerService(
	partnerRepo repository.PartnerRepository,
	linkRepo repository.ShopLinkRepository,
	contactRepo repository.ContactRepository,
	shops service.WooShopClient,
	logger *slog.Logger,
) usecase.PartnerUsecase {
	return &partnerService{
		partnerRepo: partnerRepo,
		linkRepo:    linkRepo,
		contactRepo: contactRepo,
		shops:       shops,
		logger:      logger,
	}
}

// CreatePartner creates the remote shop first and only then the local
// partner, so an active partner never exists without a confirmed remote
// counterpart. A failed remote create aborts the whole operation; a failed
// link insert after both creates is reported as a warning on an otherwise
// successful result.
func (s *partnerService) CreatePartner(ctx context.Context, input *usecase.CreatePartnerInput) (*usecase.PartnerOutput, error) {
	normalizeCreateInput(input)
	if input.CompanyName == "" || input.TaxID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("company_name and tax_id are required and must be non-empty strings")
	}

	partner := partnerFromCreateInput(input)

	wooShopID, err := s.shops.CreateShop(ctx, shopPayload(partner))
	if err != nil {
		return nil, domainerrors.ErrWooShopCreateFailed.WithDetails(err.Error())
	}

	if err := s.partnerRepo.Create(ctx, partner); err != nil {
		// The just-created remote shop is left orphaned on purpose: it will
		// be adopted by name on the partner's next update, or swept
		// out-of-band. No compensating delete is attempted here.
		s.logger.Error("partner insert failed after remote shop create",
			slog.Int64("wooShopID", wooShopID), slog.Any("error", err))

		return nil, domainerrors.ErrPartnerCreateFailed.WithDetails(err.Error())
	}

	out := &usecase.PartnerOutput{Partner: partner, WooShopID: &wooShopID}

	link := &entity.ShopLink{PartnerID: partner.ID, WooShopID: wooShopID}
	if err := s.linkRepo.Create(ctx, link); err != nil {
		s.logger.Warn("shop link insert failed",
			slog.String("partnerID", partner.ID.String()),
			slog.Int64("wooShopID", wooShopID), slog.Any("error", err))
		out.Warning = newWarning(usecase.WarningShopLinkCreate,
			"Partner created, but linking to Woo shop failed.", err)
	}

	s.enrichAdministratorName(ctx, partner)

	return out, nil
}

// UpdatePartner applies the partial update to the authoritative local row
// first; no remote outcome can fail the operation after that point. With an
// active link the remote shop is updated in place. Without one (drift from an
// earlier partial failure) the remote side is re-established, and a
// duplicate-name rejection is recovered by adopting the same-named shop.
func (s *partnerService) UpdatePartner(ctx context.Context, id uuid.UUID, input *usecase.UpdatePartnerInput) (*usecase.PartnerOutput, error) {
	normalizeUpdateInput(input)
	if err := validateUpdateInput(input); err != nil {
		return nil, err
	}

	partner, err := s.partnerRepo.Update(ctx, id, patchFromUpdateInput(input))
	if err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return nil, domainerrors.ErrPartnerNotFound
		}

		return nil, domainerrors.ErrPartnerUpdateFailed.WithDetails(err.Error())
	}

	out := &usecase.PartnerOutput{Partner: partner}

	link, err := s.linkRepo.FindActiveByPartner(ctx, id)
	switch {
	case err == nil:
		out.WooShopID = &link.WooShopID
		if _, uerr := s.shops.UpdateShop(ctx, link.WooShopID, shopPayload(partner)); uerr != nil {
			s.logger.Warn("remote shop update failed",
				slog.Int64("wooShopID", link.WooShopID), slog.Any("error", uerr))
			out.Warning = newWarning(usecase.WarningWooShopUpdate,
				"Partner updated, but Woo shop update failed.", uerr)
		}
	default:
		if !errors.Is(err, repository.ErrShopLinkNotFound) {
			// A failed lookup is treated like a missing link; the create
			// path below either repairs the association or reports why not.
			s.logger.Warn("shop link lookup failed", slog.Any("error", err))
		}
		s.healMissingLink(ctx, partner, out)
	}

	s.enrichAdministratorName(ctx, partner)

	return out, nil
}

// healMissingLink re-establishes the remote shop for a partner that has no
// active link. On a duplicate-name rejection it searches the remote system
// for the exact (case-insensitive) company name and adopts the found id.
func (s *partnerService) healMissingLink(ctx context.Context, partner *entity.Partner, out *usecase.PartnerOutput) {
	wooShopID, err := s.shops.CreateShop(ctx, shopPayload(partner))
	if err != nil {
		if !errors.Is(err, service.ErrShopNameExists) {
			out.Warning = newWarning(usecase.WarningWooShopCreate,
				"Partner updated, but Woo shop creation failed.", err)

			return
		}

		wooShopID, err = s.findShopByExactName(ctx, partner.CompanyName)
		if err != nil {
			out.Warning = newWarning(usecase.WarningWooShopCreateFind,
				"Partner updated, but could not create or resolve Woo shop.", err)

			return
		}
		s.logger.Info("adopted existing remote shop",
			slog.String("partnerID", partner.ID.String()),
			slog.Int64("wooShopID", wooShopID))
	}

	out.WooShopID = &wooShopID

	link := &entity.ShopLink{PartnerID: partner.ID, WooShopID: wooShopID}
	if err := s.linkRepo.Create(ctx, link); err != nil {
		s.logger.Warn("shop link insert failed",
			slog.String("partnerID", partner.ID.String()),
			slog.Int64("wooShopID", wooShopID), slog.Any("error", err))
		out.Warning = newWarning(usecase.WarningShopLinkCreate,
			"Partner updated, but linking to Woo shop failed.", err)
	}
}

// findShopByExactName searches the remote system and returns the id of the
// shop whose name equals the query, compared case-insensitively after trimming.
func (s *partnerService) findShopByExactName(ctx context.Context, name string) (int64, error) {
	results, err := s.shops.SearchShops(ctx, strings.TrimSpace(name), shopSearchPageSize)
	if err != nil {
		return 0, errors.Wrap(err, "failed to search remote shops")
	}

	needle := strings.ToLower(strings.TrimSpace(name))
	for _, shop := range results {
		if strings.ToLower(strings.TrimSpace(shop.Name)) == needle {
			return shop.ID, nil
		}
	}

	return 0, errors.Errorf("existing Woo shop named %q not found", name)
}

// DeletePartner soft-deletes the partner, force-deletes the remote shop of
// every active link, then soft-deletes the links in one update. Once the
// partner row is marked deleted the operation always succeeds; remote and
// link-table failures only produce warnings, later ones overwriting earlier.
func (s *partnerService) DeletePartner(ctx context.Context, id uuid.UUID) (*usecase.DeletePartnerOutput, error) {
	if err := s.partnerRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return nil, domainerrors.ErrPartnerNotFound
		}

		return nil, domainerrors.ErrPartnerDeleteFailed.WithDetails(err.Error())
	}

	out := &usecase.DeletePartnerOutput{Deleted: true, ID: id}

	links, err := s.linkRepo.ListActiveByPartner(ctx, id)
	if err != nil {
		s.logger.Warn("shop link listing failed during partner delete",
			slog.String("partnerID", id.String()), slog.Any("error", err))

		return out, nil
	}
	if len(links) == 0 {
		return out, nil
	}

	for _, link := range links {
		if link.WooShopID == 0 {
			continue
		}
		if err := s.shops.DeleteShop(ctx, link.WooShopID, true); err != nil {
			s.logger.Warn("remote shop delete failed",
				slog.Int64("wooShopID", link.WooShopID), slog.Any("error", err))
			out.Warning = newWarning(usecase.WarningWooShopDelete,
				"Partner deleted, but deleting Woo shop failed for at least one link.", err)
		}
	}

	if err := s.linkRepo.SoftDeleteByPartner(ctx, id); err != nil {
		s.logger.Warn("shop link soft delete failed",
			slog.String("partnerID", id.String()), slog.Any("error", err))
		out.Warning = newWarning(usecase.WarningShopLinkSoftDelete,
			"Partner deleted, but marking shop link(s) as deleted failed.", err)
	}

	return out, nil
}

// GetPartner retrieves a single active partner with its administrator name resolved.
func (s *partnerService) GetPartner(ctx context.Context, id uuid.UUID) (*entity.Partner, error) {
	partner, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return nil, domainerrors.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to fetch partner")
	}

	s.enrichAdministratorName(ctx, partner)

	return partner, nil
}

// ListPartners retrieves all active partners, newest first.
func (s *partnerService) ListPartners(ctx context.Context) ([]*entity.Partner, error) {
	partners, err := s.partnerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list partners")
	}

	for _, partner := range partners {
		s.enrichAdministratorName(ctx, partner)
	}

	return partners, nil
}

// enrichAdministratorName fills in the derived AdministratorName field. The
// enrichment is cosmetic; a failed contact lookup never fails the operation.
func (s *partnerService) enrichAdministratorName(ctx context.Context, partner *entity.Partner) {
	if partner == nil || partner.AdministratorContactID == nil {
		return
	}

	contact, err := s.contactRepo.FindByID(ctx, *partner.AdministratorContactID)
	if err != nil {
		if !errors.Is(err, repository.ErrContactNotFound) {
			s.logger.Debug("administrator contact lookup failed",
				slog.String("contactID", partner.AdministratorContactID.String()),
				slog.Any("error", err))
		}

		return
	}

	partner.AdministratorName = contact.DisplayName()
}

// --- Input shaping helpers ---

func newWarning(code, message string, cause error) *usecase.Warning {
	w := &usecase.Warning{Code: code, Message: message}
	if cause != nil {
		w.Detail = cause.Error()
	}

	return w
}

// shopPayload projects a partner onto the remote shop schema: registration
// number falls back to tax id, business email to orders email.
func shopPayload(p *entity.Partner) service.ShopPayload {
	ident := strings.TrimSpace(p.RegistrationNumber)
	if ident == "" {
		ident = strings.TrimSpace(p.TaxID)
	}

	email := strings.TrimSpace(p.BusinessEmail)
	if email == "" {
		email = strings.TrimSpace(p.OrdersEmail)
	}

	return service.ShopPayload{
		Name:                 strings.TrimSpace(p.CompanyName),
		IdentificationNumber: ident,
		Phone:                strings.TrimSpace(p.PhoneNumber),
		Email:                email,
		Address:              strings.TrimSpace(p.Address),
	}
}

func normalizeCreateInput(input *usecase.CreatePartnerInput) {
	input.CompanyName = strings.TrimSpace(input.CompanyName)
	input.TaxID = strings.TrimSpace(input.TaxID)
	input.RegistrationNumber = strings.TrimSpace(input.RegistrationNumber)
	input.Address = strings.TrimSpace(input.Address)
	input.BankAccount = strings.TrimSpace(input.BankAccount)
	input.BankName = strings.TrimSpace(input.BankName)
	input.BusinessEmail = strings.TrimSpace(input.BusinessEmail)
	input.OrdersEmail = strings.TrimSpace(input.OrdersEmail)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
}

func partnerFromCreateInput(input *usecase.CreatePartnerInput) *entity.Partner {
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	return &entity.Partner{
		CompanyName:            input.CompanyName,
		TaxID:                  input.TaxID,
		RegistrationNumber:     input.RegistrationNumber,
		Address:                input.Address,
		BankAccount:            input.BankAccount,
		BankName:               input.BankName,
		AdministratorContactID: input.AdministratorContactID,
		BusinessEmail:          input.BusinessEmail,
		OrdersEmail:            input.OrdersEmail,
		PhoneNumber:            input.PhoneNumber,
		IsActive:               isActive,
	}
}

func normalizeUpdateInput(input *usecase.UpdatePartnerInput) {
	for _, field := range []*string{
		input.CompanyName, input.TaxID, input.RegistrationNumber,
		input.Address, input.BankAccount, input.BankName,
		input.BusinessEmail, input.OrdersEmail, input.PhoneNumber,
	} {
		if field != nil {
			*field = strings.TrimSpace(*field)
		}
	}
}

func validateUpdateInput(input *usecase.UpdatePartnerInput) error {
	if input.CompanyName != nil && *input.CompanyName == "" {
		return domainerrors.ErrValidationFailed.WithDetails("company_name must be a non-empty string")
	}
	if input.TaxID != nil && *input.TaxID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("tax_id must be a non-empty string")
	}

	return nil
}

func patchFromUpdateInput(input *usecase.UpdatePartnerInput) repository.PartnerPatch {
	return repository.PartnerPatch{
		CompanyName:            input.CompanyName,
		TaxID:                  input.TaxID,
		RegistrationNumber:     input.RegistrationNumber,
		Address:                input.Address,
		BankAccount:            input.BankAccount,
		BankName:               input.BankName,
		AdministratorContactID: input.AdministratorContactID,
		BusinessEmail:          input.BusinessEmail,
		OrdersEmail:            input.OrdersEmail,
		PhoneNumber:            input.PhoneNumber,
		IsActive:               input.IsActive,
	}
}
