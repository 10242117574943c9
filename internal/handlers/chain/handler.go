package chain

import (
	"encoding/json"
	"net/http"

	"ehotel/infras/otel"
	"ehotel/internal/domains/chain/model"
	"ehotel/internal/domains/chain/model/dto"
	"ehotel/internal/domains/chain/service"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	"ehotel/shared/failure"
	"ehotel/shared/validator"
	"ehotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Chain
	otel    otel.Otel
}

func New(service service.Chain, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/chains", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateChain)
		routerGroup.Get("/", handler.GetChains)
		routerGroup.Get("/{id}", handler.GetChainByID)
		routerGroup.Put("/{id}", handler.UpdateChain)
		routerGroup.Delete("/{id}", handler.DeleteChain)
	})
}

// CreateChain handles the creation of a new hotel chain.
// @Summary Create a new hotel chain
// @Description Create a new hotel chain with the provided details.
// @Tags HotelChain
// @Accept json
// @Produce json
// @Param request body dto.CreateChainRequest true "Hotel chain details"
// @Success 201 {object} response.Data[dto.ChainResponse] "Hotel chain created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/chains [post]
// @Security BearerAuth
func (handler *Handler) CreateChain(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateChain")
	defer scope.End()

	var req dto.CreateChainRequest
	if err := json.NewDecoder(request.Body).Decode(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(writer, failure.BadRequestFromString("invalid request body"))

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hotel chain")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Hotel chain created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetChains retrieves all hotel chains based on query parameters.
// @Summary Get all hotel chains
// @Description Retrieve all hotel chains with optional filtering and pagination.
// @Tags HotelChain
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param city query string false "Filter by city"
// @Success 200 {object} response.Data[dto.GetChainsResponse] "List of hotel chains"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/chains [get]
// @Security BearerAuth
func (handler *Handler) GetChains(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetChains")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCity,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldCity),
				Table:    model.TableName,
			},
		},
	}

	chains, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel chains")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel chains retrieved successfully")

	response.WithJSON(w, http.StatusOK, chains)
}

// GetChainByID retrieves a hotel chain by its ID.
// @Summary Get a hotel chain by ID
// @Description Retrieve a hotel chain by its unique identifier.
// @Tags HotelChain
// @Accept json
// @Produce json
// @Param id path string true "Hotel chain ID"
// @Success 200 {object} response.Data[dto.ChainResponse] "Hotel chain details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/chains/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetChainByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetChainByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	chain, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel chain by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel chain retrieved successfully")

	response.WithJSON(w, http.StatusOK, chain)
}

// UpdateChain updates an existing hotel chain by its ID.
// @Summary Update a hotel chain by ID
// @Description Update the details of an existing hotel chain.
// @Tags HotelChain
// @Accept json
// @Produce json
// @Param id path string true "Hotel chain ID"
// @Param request body dto.UpdateChainRequest true "Hotel chain details"
// @Success 200 {object} response.Message "Hotel chain updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/chains/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateChain(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateChain")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateChainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, failure.BadRequestFromString("invalid request body"))

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hotel chain")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel chain updated successfully")

	response.WithMessage(w, http.StatusOK, "Hotel chain updated successfully")
}

// DeleteChain deletes a hotel chain by its ID.
// @Summary Delete a hotel chain by ID
// @Description Delete a hotel chain using its unique identifier.
// @Tags HotelChain
// @Accept json
// @Produce json
// @Param id path string true "Hotel chain ID"
// @Success 200 {object} response.Message "Hotel chain deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/chains/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteChain(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteChain")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete hotel chain")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel chain deleted successfully")

	response.WithMessage(w, http.StatusOK, "Hotel chain deleted successfully")
}
