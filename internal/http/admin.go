package http

import (
	"fmt"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/goliatone/go-portfolio/internal/assets"
	"github.com/goliatone/go-portfolio/internal/auth"
	"github.com/goliatone/go-portfolio/internal/content"
	"github.com/google/uuid"
)

const maxUploadMemory = 12 << 20

// AdminAPI serves the authenticated content management endpoints. The access
// gate runs in front of it, so handlers only resolve the acting user from the
// session already on the context.
type AdminAPI struct {
	basePath string
	content  content.Service
	assets   assets.Service
}

// AdminOption mutates the AdminAPI configuration.
type AdminOption func(*AdminAPI)

// NewAdminAPI constructs an AdminAPI instance.
func NewAdminAPI(opts ...AdminOption) *AdminAPI {
	api := &AdminAPI{
		basePath: "/api/admin",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithAdminBasePath overrides the base path (defaults to "/api/admin").
func WithAdminBasePath(path string) AdminOption {
	return func(api *AdminAPI) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithAdminContentService wires the content service.
func WithAdminContentService(service content.Service) AdminOption {
	return func(api *AdminAPI) {
		api.content = service
	}
}

// WithAdminAssetService wires the asset service for uploads.
func WithAdminAssetService(service assets.Service) AdminOption {
	return func(api *AdminAPI) {
		api.assets = service
	}
}

// Register attaches the admin endpoints to the provided mux.
func (api *AdminAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}
	if api.content == nil {
		return fmt.Errorf("http: content service is required")
	}

	base := joinPath(api.basePath, "")

	mux.HandleFunc("GET "+joinPath(base, "hero"), api.handleGetHero)
	mux.HandleFunc("PUT "+joinPath(base, "hero"), api.handleUpdateHero)
	mux.HandleFunc("POST "+joinPath(base, "hero/publish"), api.handlePublishHero)

	mux.HandleFunc("GET "+joinPath(base, "about"), api.handleGetAbout)
	mux.HandleFunc("PUT "+joinPath(base, "about"), api.handleUpdateAbout)
	mux.HandleFunc("POST "+joinPath(base, "about/publish"), api.handlePublishAbout)

	mux.HandleFunc("GET "+joinPath(base, "projects"), api.handleListProjects)
	mux.HandleFunc("POST "+joinPath(base, "projects"), api.handleCreateProject)
	mux.HandleFunc("GET "+joinPath(base, "projects/{id}"), api.handleGetProject)
	mux.HandleFunc("PUT "+joinPath(base, "projects/{id}"), api.handleUpdateProject)
	mux.HandleFunc("DELETE "+joinPath(base, "projects/{id}"), api.handleDeleteProject)
	mux.HandleFunc("POST "+joinPath(base, "projects/{id}/publish"), api.handlePublishProject)

	mux.HandleFunc("GET "+joinPath(base, "skills"), api.handleListSkills)
	mux.HandleFunc("POST "+joinPath(base, "skills"), api.handleCreateSkill)
	mux.HandleFunc("GET "+joinPath(base, "skills/{id}"), api.handleGetSkill)
	mux.HandleFunc("PUT "+joinPath(base, "skills/{id}"), api.handleUpdateSkill)
	mux.HandleFunc("DELETE "+joinPath(base, "skills/{id}"), api.handleDeleteSkill)
	mux.HandleFunc("POST "+joinPath(base, "skills/{id}/publish"), api.handlePublishSkill)

	mux.HandleFunc("GET "+joinPath(base, "stats"), api.handleListStats)
	mux.HandleFunc("POST "+joinPath(base, "stats"), api.handleCreateStat)
	mux.HandleFunc("GET "+joinPath(base, "stats/{id}"), api.handleGetStat)
	mux.HandleFunc("PUT "+joinPath(base, "stats/{id}"), api.handleUpdateStat)
	mux.HandleFunc("DELETE "+joinPath(base, "stats/{id}"), api.handleDeleteStat)
	mux.HandleFunc("POST "+joinPath(base, "stats/{id}/publish"), api.handlePublishStat)

	if api.assets != nil {
		mux.HandleFunc("POST "+joinPath(base, "uploads/{category}"), api.handleUpload)
		mux.HandleFunc("DELETE "+joinPath(base, "uploads"), api.handleRemoveUpload)
	}
	return nil
}

// actorID resolves the acting user from the gated session, if any.
func actorID(r *http.Request) uuid.UUID {
	session := auth.SessionFromContext(r.Context())
	if session == nil || session.User == nil {
		return uuid.Nil
	}
	id, err := uuid.Parse(session.User.ID)
	if err != nil {
		return uuid.Nil
	}
	return id
}

type translationPayload struct {
	Locale        string   `json:"locale"`
	Title         string   `json:"title,omitempty"`
	Description   string   `json:"description,omitempty"`
	Profession    string   `json:"profession,omitempty"`
	PrimaryCTA    string   `json:"primary_cta,omitempty"`
	SecondaryCTA  string   `json:"secondary_cta,omitempty"`
	Location      string   `json:"location,omitempty"`
	Availability  string   `json:"availability,omitempty"`
	Education     string   `json:"education,omitempty"`
	ServicesTitle string   `json:"services_title,omitempty"`
	Services      []string `json:"services,omitempty"`
	Label         string   `json:"label,omitempty"`
}

func translationInputs(payloads []translationPayload) []content.TranslationInput {
	if payloads == nil {
		return nil
	}
	inputs := make([]content.TranslationInput, 0, len(payloads))
	for _, p := range payloads {
		inputs = append(inputs, content.TranslationInput{
			Locale:        p.Locale,
			Title:         p.Title,
			Description:   p.Description,
			Profession:    p.Profession,
			PrimaryCTA:    p.PrimaryCTA,
			SecondaryCTA:  p.SecondaryCTA,
			Location:      p.Location,
			Availability:  p.Availability,
			Education:     p.Education,
			ServicesTitle: p.ServicesTitle,
			Services:      p.Services,
			Label:         p.Label,
		})
	}
	return inputs
}

type publishPayload struct {
	Published *bool `json:"published"`
}

func (p publishPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Published, validation.NotNil),
	)
}

type updateHeroPayload struct {
	Name         *string              `json:"name"`
	ResumeURL    *string              `json:"resume_url"`
	Translations []translationPayload `json:"translations"`
}

func (p updateHeroPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ResumeURL, is.URL),
	)
}

type updateAboutPayload struct {
	ImageURL     *string              `json:"image_url"`
	Translations []translationPayload `json:"translations"`
}

type createProjectPayload struct {
	Slug         string               `json:"slug"`
	ImageURL     string               `json:"image_url"`
	LiveURL      string               `json:"live_url"`
	RepoURL      string               `json:"repo_url"`
	Tech         []string             `json:"tech"`
	DisplayOrder int                  `json:"display_order"`
	Published    bool                 `json:"published"`
	Translations []translationPayload `json:"translations"`
}

func (p createProjectPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.LiveURL, is.URL),
		validation.Field(&p.RepoURL, is.URL),
		validation.Field(&p.DisplayOrder, validation.Min(0)),
	)
}

type updateProjectPayload struct {
	Slug         *string              `json:"slug"`
	ImageURL     *string              `json:"image_url"`
	LiveURL      *string              `json:"live_url"`
	RepoURL      *string              `json:"repo_url"`
	Tech         []string             `json:"tech"`
	DisplayOrder *int                 `json:"display_order"`
	Translations []translationPayload `json:"translations"`
}

func (p updateProjectPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.LiveURL, is.URL),
		validation.Field(&p.RepoURL, is.URL),
		validation.Field(&p.DisplayOrder, validation.Min(0)),
	)
}

var gradientRule = validation.Match(hexColorPattern)

type createSkillPayload struct {
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	GradientFrom string `json:"gradient_from"`
	GradientTo   string `json:"gradient_to"`
	DisplayOrder int    `json:"display_order"`
	Published    bool   `json:"published"`
}

func (p createSkillPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Icon, validation.Required),
		validation.Field(&p.GradientFrom, gradientRule),
		validation.Field(&p.GradientTo, gradientRule),
		validation.Field(&p.DisplayOrder, validation.Min(0)),
	)
}

type updateSkillPayload struct {
	Name         *string `json:"name"`
	Icon         *string `json:"icon"`
	GradientFrom *string `json:"gradient_from"`
	GradientTo   *string `json:"gradient_to"`
	DisplayOrder *int    `json:"display_order"`
}

func (p updateSkillPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.GradientFrom, gradientRule),
		validation.Field(&p.GradientTo, gradientRule),
		validation.Field(&p.DisplayOrder, validation.Min(0)),
	)
}

type createStatPayload struct {
	Value        string               `json:"value"`
	DisplayOrder int                  `json:"display_order"`
	Published    bool                 `json:"published"`
	Translations []translationPayload `json:"translations"`
}

func (p createStatPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Value, validation.Required),
		validation.Field(&p.DisplayOrder, validation.Min(0)),
	)
}

type updateStatPayload struct {
	Value        *string              `json:"value"`
	DisplayOrder *int                 `json:"display_order"`
	Translations []translationPayload `json:"translations"`
}

func (p updateStatPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.DisplayOrder, validation.Min(0)),
	)
}

func (api *AdminAPI) handleGetHero(w http.ResponseWriter, r *http.Request) {
	record, err := api.content.Hero(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleUpdateHero(w http.ResponseWriter, r *http.Request) {
	var payload updateHeroPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, err)
		return
	}
	record, err := api.content.UpdateHero(r.Context(), content.UpdateHeroRequest{
		Name:         payload.Name,
		ResumeURL:    payload.ResumeURL,
		Translations: translationInputs(payload.Translations),
		UpdatedBy:    actorID(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handlePublishHero(w http.ResponseWriter, r *http.Request) {
	var payload publishPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, err)
		return
	}
	record, err := api.content.SetHeroPublished(r.Context(), *payload.Published, actorID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleGetAbout(w http.ResponseWriter, r *http.Request) {
	record, err := api.content.About(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleUpdateAbout(w http.ResponseWriter, r *http.Request) {
	var payload updateAboutPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	record, err := api.content.UpdateAbout(r.Context(), content.UpdateAboutRequest{
		ImageURL:     payload.ImageURL,
		Translations: translationInputs(payload.Translations),
		UpdatedBy:    actorID(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handlePublishAbout(w http.ResponseWriter, r *http.Request) {
	var payload publishPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, err)
		return
	}
	record, err := api.content.SetAboutPublished(r.Context(), *payload.Published, actorID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleListProjects(w http.ResponseWriter, r *http.Request) {
	records, err := api.content.Projects(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (api *AdminAPI) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var payload createProjectPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, err)
		return
	}
	record, err := api.content.CreateProject(r.Context(), content.CreateProjectRequest{
		Slug:         payload.Slug,
		ImageURL:     payload.ImageURL,
		LiveURL:      payload.LiveURL,
		RepoURL:      payload.RepoURL,
		Tech:         payload.Tech,
		DisplayOrder: payload.DisplayOrder,
		Published:    payload.Published,
		Translations: translationInputs(payload.Translations),
		CreatedBy:    actorID(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (api *AdminAPI) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	record, err := api.content.Project(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	var payload updateProjectPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, err)
		return
	}
	record, err := api.content.UpdateProject(r.Context(), content.UpdateProjectRequest{
		ID:           id,
		Slug:         payload.Slug,
		ImageURL:     payload.ImageURL,
		LiveURL:      payload.LiveURL,
		RepoURL:      payload.RepoURL,
		Tech:         payload.Tech,
		DisplayOrder: payload.DisplayOrder,
		Translations: translationInputs(payload.Translations),
		UpdatedBy:    actorID(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	if err := api.content.DeleteProject(r.Context(), content.DeleteProjectRequest{
		ID:        id,
		DeletedBy: actorID(r),
	}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (api *AdminAPI) handlePublishProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	var payload publishPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, err)
		return
	}
	record, err := api.content.SetProjectPublished(r.Context(), id, *payload.Published, actorID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleListSkills(w http.ResponseWriter, r *http.Request) {
	records, err := api.content.Skills(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (api *AdminAPI) handleCreateSkill(w http.ResponseWriter, r *http.Request) {
	var payload createSkillPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, err)
		return
	}
	record, err := api.content.CreateSkill(r.Context(), content.CreateSkillRequest{
		Name:         payload.Name,
		Icon:         payload.Icon,
		GradientFrom: payload.GradientFrom,
		GradientTo:   payload.GradientTo,
		DisplayOrder: payload.DisplayOrder,
		Published:    payload.Published,
		CreatedBy:    actorID(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (api *AdminAPI) handleGetSkill(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	record, err := api.content.Skill(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	var payload updateSkillPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, err)
		return
	}
	record, err := api.content.UpdateSkill(r.Context(), content.UpdateSkillRequest{
		ID:           id,
		Name:         payload.Name,
		Icon:         payload.Icon,
		GradientFrom: payload.GradientFrom,
		GradientTo:   payload.GradientTo,
		DisplayOrder: payload.DisplayOrder,
		UpdatedBy:    actorID(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	if err := api.content.DeleteSkill(r.Context(), id, actorID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (api *AdminAPI) handlePublishSkill(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	var payload publishPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, err)
		return
	}
	record, err := api.content.SetSkillPublished(r.Context(), id, *payload.Published, actorID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleListStats(w http.ResponseWriter, r *http.Request) {
	records, err := api.content.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (api *AdminAPI) handleCreateStat(w http.ResponseWriter, r *http.Request) {
	var payload createStatPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, err)
		return
	}
	record, err := api.content.CreateStat(r.Context(), content.CreateStatRequest{
		Value:        payload.Value,
		DisplayOrder: payload.DisplayOrder,
		Published:    payload.Published,
		Translations: translationInputs(payload.Translations),
		CreatedBy:    actorID(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (api *AdminAPI) handleGetStat(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	record, err := api.content.Stat(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleUpdateStat(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	var payload updateStatPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, err)
		return
	}
	record, err := api.content.UpdateStat(r.Context(), content.UpdateStatRequest{
		ID:           id,
		Value:        payload.Value,
		DisplayOrder: payload.DisplayOrder,
		Translations: translationInputs(payload.Translations),
		UpdatedBy:    actorID(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleDeleteStat(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	if err := api.content.DeleteStat(r.Context(), id, actorID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (api *AdminAPI) handlePublishStat(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	var payload publishPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, err)
		return
	}
	record, err := api.content.SetStatPublished(r.Context(), id, *payload.Published, actorID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// handleUpload stores a multipart file for the category named in the path.
// When the request carries oldImageUrl the previous object is removed after
// the new upload succeeds.
func (api *AdminAPI) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid multipart payload"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		file, header, err = r.FormFile("image")
	}
	if err != nil {
		writeError(w, assets.ErrFileRequired)
		return
	}
	defer file.Close()

	upload := assets.UploadRequest{
		Category:    r.PathValue("category"),
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}

	var asset *assets.Asset
	if previous := strings.TrimSpace(r.FormValue("oldImageUrl")); previous != "" {
		asset, err = api.assets.Replace(r.Context(), assets.ReplaceRequest{
			Upload:      upload,
			PreviousURL: previous,
		})
	} else {
		asset, err = api.assets.Upload(r.Context(), upload)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, asset)
}

type removeUploadPayload struct {
	URL string `json:"url"`
}

func (p removeUploadPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.URL, validation.Required),
	)
}

func (api *AdminAPI) handleRemoveUpload(w http.ResponseWriter, r *http.Request) {
	var payload removeUploadPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, err)
		return
	}
	if err := api.assets.Remove(r.Context(), payload.URL); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
