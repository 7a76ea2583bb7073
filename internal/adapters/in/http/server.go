// Package http provides the Echo-based inbound adapter. Handlers translate
// HTTP requests into commands and queries, and translate the tracker's
// failure taxonomy into status codes.
//
// The hosting environment authenticates callers; handlers receive the
// verified principal token in the X-Caller-Id header and pass it through
// as an opaque identity. Reads require no caller identity at all.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// callerHeader carries the pre-authenticated principal token.
const callerHeader = "X-Caller-Id"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	transferOwnershipHandler commands.TransferOwnershipCommandHandler
	acceptOwnershipHandler   commands.AcceptOwnershipCommandHandler
	addManagerHandler        commands.AddManagerCommandHandler
	fireManagerHandler       commands.FireManagerCommandHandler
	addEmployeeHandler       commands.AddEmployeeCommandHandler
	fireEmployeeHandler      commands.FireEmployeeCommandHandler
	addShipmentHandler       commands.AddShipmentCommandHandler
	changeStatusHandler      commands.ChangeShipmentStatusCommandHandler
	cancelShipmentHandler    commands.CancelShipmentCommandHandler

	// Query handlers
	checkStatusHandler     queries.CheckShipmentStatusQueryHandler
	getAllShipmentsHandler queries.GetAllShipmentsQueryHandler
}

// NewServer creates the HTTP server with the required command and query
// handlers.
func NewServer(
	transferOwnershipHandler commands.TransferOwnershipCommandHandler,
	acceptOwnershipHandler commands.AcceptOwnershipCommandHandler,
	addManagerHandler commands.AddManagerCommandHandler,
	fireManagerHandler commands.FireManagerCommandHandler,
	addEmployeeHandler commands.AddEmployeeCommandHandler,
	fireEmployeeHandler commands.FireEmployeeCommandHandler,
	addShipmentHandler commands.AddShipmentCommandHandler,
	changeStatusHandler commands.ChangeShipmentStatusCommandHandler,
	cancelShipmentHandler commands.CancelShipmentCommandHandler,
	checkStatusHandler queries.CheckShipmentStatusQueryHandler,
	getAllShipmentsHandler queries.GetAllShipmentsQueryHandler,
) *Server {
	return &Server{
		transferOwnershipHandler: transferOwnershipHandler,
		acceptOwnershipHandler:   acceptOwnershipHandler,
		addManagerHandler:        addManagerHandler,
		fireManagerHandler:       fireManagerHandler,
		addEmployeeHandler:       addEmployeeHandler,
		fireEmployeeHandler:      fireEmployeeHandler,
		addShipmentHandler:       addShipmentHandler,
		changeStatusHandler:      changeStatusHandler,
		cancelShipmentHandler:    cancelShipmentHandler,
		checkStatusHandler:       checkStatusHandler,
		getAllShipmentsHandler:   getAllShipmentsHandler,
	}
}

// RegisterRoutes wires all tracker routes onto the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/ownership/transfer", s.TransferOwnership)
	api.POST("/ownership/accept", s.AcceptOwnership)

	api.POST("/managers", s.AddManager)
	api.DELETE("/managers/:identity", s.FireManager)
	api.POST("/employees", s.AddEmployee)
	api.DELETE("/employees/:identity", s.FireEmployee)

	api.POST("/shipments", s.AddShipment)
	api.GET("/shipments", s.GetShipments)
	api.GET("/shipments/:id", s.CheckShipmentStatus)
	api.PATCH("/shipments/:id", s.ChangeShipmentStatus)
	api.POST("/shipments/:id/cancel", s.CancelShipment)
}

// Error is the JSON error body returned for failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// IdentityRequest carries an identity token in a request body.
type IdentityRequest struct {
	Identity string `json:"identity"`
}

// NewShipmentRequest carries the initial location of a new shipment.
type NewShipmentRequest struct {
	Location string `json:"location"`
}

// NewShipmentResponse returns the id assigned to a new shipment.
type NewShipmentResponse struct {
	ID int64 `json:"id"`
}

// ChangeStatusRequest carries the target status and an optional new
// location for a status change.
type ChangeStatusRequest struct {
	Status   string  `json:"status"`
	Location *string `json:"location,omitempty"`
}

// ShipmentResponse is the JSON rendering of a shipment's current state.
type ShipmentResponse struct {
	ID       int64  `json:"id"`
	Status   string `json:"status"`
	Location string `json:"location"`
}

// TransferOwnership handles POST /api/v1/ownership/transfer.
func (s *Server) TransferOwnership(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	var req IdentityRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx)
	}

	candidate, err := kernel.NewIdentity(req.Identity)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewTransferOwnershipCommand(caller, candidate)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.transferOwnershipHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptOwnership handles POST /api/v1/ownership/accept.
func (s *Server) AcceptOwnership(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAcceptOwnershipCommand(caller)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.acceptOwnershipHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddManager handles POST /api/v1/managers.
func (s *Server) AddManager(ctx echo.Context) error {
	caller, identity, err := s.callerAndBodyIdentity(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddManagerCommand(caller, identity)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.addManagerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// FireManager handles DELETE /api/v1/managers/:identity.
func (s *Server) FireManager(ctx echo.Context) error {
	caller, identity, err := s.callerAndParamIdentity(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewFireManagerCommand(caller, identity)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.fireManagerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddEmployee handles POST /api/v1/employees.
func (s *Server) AddEmployee(ctx echo.Context) error {
	caller, identity, err := s.callerAndBodyIdentity(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddEmployeeCommand(caller, identity)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.addEmployeeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// FireEmployee handles DELETE /api/v1/employees/:identity.
func (s *Server) FireEmployee(ctx echo.Context) error {
	caller, identity, err := s.callerAndParamIdentity(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewFireEmployeeCommand(caller, identity)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.fireEmployeeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddShipment handles POST /api/v1/shipments.
func (s *Server) AddShipment(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	var req NewShipmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx)
	}

	location, err := kernel.NewLocation(req.Location)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewAddShipmentCommand(caller, location)
	if err != nil {
		return domainError(ctx, err)
	}

	id, err := s.addShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, NewShipmentResponse{ID: int64(id)})
}

// ChangeShipmentStatus handles PATCH /api/v1/shipments/:id.
func (s *Server) ChangeShipmentStatus(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	id, err := shipmentIDParam(ctx)
	if err != nil {
		return domainError(ctx, err)
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx)
	}

	status, err := shipment.StatusFromString(req.Status)
	if err != nil {
		return domainError(ctx, err)
	}

	var location *kernel.Location
	if req.Location != nil {
		loc, locErr := kernel.NewLocation(*req.Location)
		if locErr != nil {
			return domainError(ctx, locErr)
		}
		location = &loc
	}

	cmd, err := commands.NewChangeShipmentStatusCommand(caller, id, status, location)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelShipment handles POST /api/v1/shipments/:id/cancel.
func (s *Server) CancelShipment(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	id, err := shipmentIDParam(ctx)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewCancelShipmentCommand(caller, id)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.cancelShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CheckShipmentStatus handles GET /api/v1/shipments/:id. No caller
// identity is required; status lookups are open to external observers.
func (s *Server) CheckShipmentStatus(ctx echo.Context) error {
	id, err := shipmentIDParam(ctx)
	if err != nil {
		return domainError(ctx, err)
	}

	query, err := queries.NewCheckShipmentStatusQuery(id)
	if err != nil {
		return domainError(ctx, err)
	}

	response, err := s.checkStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ShipmentResponse{
		ID:       int64(response.ID),
		Status:   response.Status.String(),
		Location: response.Location,
	})
}

// GetShipments handles GET /api/v1/shipments.
func (s *Server) GetShipments(ctx echo.Context) error {
	shipments, err := s.getAllShipmentsHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetAllShipmentsQuery(),
	)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]ShipmentResponse, len(shipments))
	for i, record := range shipments {
		response[i] = ShipmentResponse{
			ID:       int64(record.ID),
			Status:   record.Status.String(),
			Location: record.Location,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// caller extracts the pre-authenticated principal token from the request.
// On failure the 401 response is already written; the returned error only
// signals the handler to stop.
func (s *Server) caller(ctx echo.Context) (kernel.Identity, error) {
	caller, err := kernel.NewIdentity(ctx.Request().Header.Get(callerHeader))
	if err != nil {
		_ = ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "Missing " + callerHeader + " header",
		})
		return kernel.Identity{}, err
	}
	return caller, nil
}

func (s *Server) callerAndBodyIdentity(ctx echo.Context) (kernel.Identity, kernel.Identity, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return kernel.Identity{}, kernel.Identity{}, err
	}

	var req IdentityRequest
	if err = ctx.Bind(&req); err != nil {
		_ = badRequest(ctx)
		return kernel.Identity{}, kernel.Identity{}, err
	}

	identity, err := kernel.NewIdentity(req.Identity)
	if err != nil {
		_ = domainError(ctx, err)
		return kernel.Identity{}, kernel.Identity{}, err
	}

	return caller, identity, nil
}

func (s *Server) callerAndParamIdentity(ctx echo.Context) (kernel.Identity, kernel.Identity, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return kernel.Identity{}, kernel.Identity{}, err
	}

	identity, err := kernel.NewIdentity(ctx.Param("identity"))
	if err != nil {
		_ = domainError(ctx, err)
		return kernel.Identity{}, kernel.Identity{}, err
	}

	return caller, identity, nil
}

// shipmentIDParam parses the :id path parameter. Non-numeric ids are
// invalid input; range classification (non-positive ids are never
// assigned, hence not found) is left to the query and command
// constructors.
func shipmentIDParam(ctx echo.Context) (kernel.ShipmentID, error) {
	raw, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("shipment id", err)
	}

	return kernel.ShipmentID(raw), nil
}

func badRequest(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

// domainError maps the tracker's failure taxonomy onto HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusUnauthorized
	case errors.Is(err, errs.ErrAlreadyExists):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusUnprocessableEntity
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
