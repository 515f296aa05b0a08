package impl

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"vitrine/config"
	deliverycontext "vitrine/internal/delivery/context"
	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/service"
	"vitrine/internal/showcase"
	"vitrine/internal/usecase"
	"vitrine/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// showcaseService implements the ShowcaseUsecase interface. It composes the
// profile and property services so both share the same degradation rules,
// then pipes the snapshot through the projector, the catalog organizer and
// the renderer.
type showcaseService struct {
	profiles      usecase.ProfileUsecase
	properties    usecase.PropertyUsecase
	projector     *showcase.Projector
	renderer      *showcase.Renderer
	qrService     service.QRCodeService
	publicBaseURL string
	logger        *slog.Logger
}

// ShowcaseServiceParams holds dependencies for showcaseService, injected by Fx.
type ShowcaseServiceParams struct {
	fx.In

	Profiles   usecase.ProfileUsecase
	Properties usecase.PropertyUsecase
	QRService  service.QRCodeService
	Config     *config.Config
	Logger     *slog.Logger
}

// NewShowcaseService is the constructor for showcaseService.
func NewShowcaseService(params ShowcaseServiceParams) (usecase.ShowcaseUsecase, error) {
	renderer, err := showcase.NewRenderer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build showcase renderer")
	}

	defaultCity := ""
	fallbackWhatsApp := ""
	publicBaseURL := ""
	if params.Config != nil && params.Config.Showcase != nil {
		defaultCity = params.Config.Showcase.DefaultCity
		fallbackWhatsApp = params.Config.Showcase.FallbackWhatsApp
		publicBaseURL = params.Config.Showcase.PublicBaseURL
	}

	return &showcaseService{
		profiles:      params.Profiles,
		properties:    params.Properties,
		projector:     showcase.NewProjector(defaultCity, fallbackWhatsApp),
		renderer:      renderer,
		qrService:     params.QRService,
		publicBaseURL: publicBaseURL,
		logger:        params.Logger,
	}, nil
}

func (srv *showcaseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GeneratePage renders the self-contained showcase document for the account.
func (srv *showcaseService) GeneratePage(ctx context.Context, accountID uuid.UUID) ([]byte, error) {
	agent, display, err := srv.snapshot(ctx, accountID)
	if err != nil {
		return nil, err
	}

	catalog := showcase.BuildCatalog(display)

	var buf bytes.Buffer
	if err := srv.renderer.Render(&buf, agent, catalog, display); err != nil {
		return nil, errors.Wrap(err, "failed to render showcase page")
	}

	srv.log(ctx).Info("Showcase page generated",
		slog.String("accountID", accountID.String()),
		slog.Int("properties", len(display)),
		slog.Int("sections", len(catalog.Sections)),
		slog.String("size", util.FormatBytes(int64(buf.Len()))))

	return buf.Bytes(), nil
}

// PreviewProperty opens the listing in a throwaway view session and returns
// the derived detail state, exercising the same code path the public page
// walks client-side.
func (srv *showcaseService) PreviewProperty(ctx context.Context, accountID, propertyID uuid.UUID) (*usecase.PropertyPreview, error) {
	property, err := srv.properties.GetProperty(ctx, accountID, propertyID)
	if err != nil {
		return nil, err
	}

	profile, err := srv.profiles.GetProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	agent := srv.projector.Profile(profile)
	display := srv.projector.Properties(agent, []entity.Property{*property})

	session := showcase.NewSession(agent, display, nil)
	if !session.Open(display[0].ID) {
		return nil, domainerrors.ErrPropertyNotFound.WrapMessage("listing missing from session snapshot")
	}
	defer session.Close()

	detail := session.Detail()

	return &usecase.PropertyPreview{
		Property:      detail.Property,
		Badge:         detail.Badge,
		Tone:          detail.Tone,
		MapURL:        detail.MapURL,
		ContactLink:   detail.ContactLink,
		ShowNav:       detail.Gallery.ShowNav(),
		FinancingOpen: detail.Property.ShowFinancing,
	}, nil
}

// ShowcaseQR renders the QR code that links to the agent's public page.
func (srv *showcaseService) ShowcaseQR(ctx context.Context, accountID uuid.UUID) ([]byte, error) {
	if srv.publicBaseURL == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("public base URL is not configured")
	}

	url := fmt.Sprintf("%s/v/%s", strings.TrimRight(srv.publicBaseURL, "/"), accountID)

	png, err := srv.qrService.GenerateShowcaseQR(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate showcase QR code")
	}

	return png, nil
}

// snapshot gathers the profile and listings and projects them into display form.
func (srv *showcaseService) snapshot(ctx context.Context, accountID uuid.UUID) (showcase.DisplayProfile, []showcase.DisplayProperty, error) {
	profile, err := srv.profiles.GetProfile(ctx, accountID)
	if err != nil {
		return showcase.DisplayProfile{}, nil, err
	}

	properties, err := srv.properties.ListProperties(ctx, accountID, nil)
	if err != nil {
		return showcase.DisplayProfile{}, nil, err
	}

	agent := srv.projector.Profile(profile)
	display := srv.projector.Properties(agent, properties)

	return agent, display, nil
}
