package api

import (
	"context"
	"net/http"

	reqdto "property-rental/internal/handler/dto/request"
	resdto "property-rental/internal/handler/dto/response"
	"property-rental/internal/handler/httperr"
	"property-rental/internal/usecase/commands"
	"property-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type contactCreator interface {
	Create(ctx context.Context, req reqdto.CreateContactRequest) (*queries.ContactView, error)
}

type contactReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*queries.ContactView, error)
	List(ctx context.Context) ([]*queries.ContactView, error)
}

// contactHandler serves the owner and host registries, which share one shape.
type contactHandler struct {
	basePath string
	cmds     contactCreator
	q        contactReader
}

func (h *contactHandler) create(c *gin.Context) {
	var req reqdto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", h.basePath+"/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromContactView(view))
}

func (h *contactHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromContactView(view))
}

func (h *contactHandler) list(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromContactList(views))
}

type OwnerHandler struct {
	contactHandler
}

func NewOwnerHandler(cmds commands.OwnerCommands, q queries.OwnerQueries) *OwnerHandler {
	return &OwnerHandler{contactHandler{basePath: "/api/owners", cmds: cmds, q: q}}
}

// @Summary Create owner
// @Tags owners
// @Accept json
// @Produce json
// @Param request body reqdto.CreateContactRequest true "Owner request"
// @Success 201 {object} resdto.ContactResponse
// @Failure 400 {object} httperr.Response
// @Router /api/owners [post]
func (h *OwnerHandler) Create(c *gin.Context) { h.create(c) }

// @Summary Get owner
// @Tags owners
// @Produce json
// @Param id path string true "Owner ID"
// @Success 200 {object} resdto.ContactResponse
// @Failure 404 {object} httperr.Response
// @Router /api/owners/{id} [get]
func (h *OwnerHandler) Get(c *gin.Context) { h.get(c) }

// @Summary List owners
// @Tags owners
// @Produce json
// @Success 200 {array} resdto.ContactResponse
// @Router /api/owners [get]
func (h *OwnerHandler) List(c *gin.Context) { h.list(c) }

type HostHandler struct {
	contactHandler
}

func NewHostHandler(cmds commands.HostCommands, q queries.HostQueries) *HostHandler {
	return &HostHandler{contactHandler{basePath: "/api/hosts", cmds: cmds, q: q}}
}

// @Summary Create host
// @Tags hosts
// @Accept json
// @Produce json
// @Param request body reqdto.CreateContactRequest true "Host request"
// @Success 201 {object} resdto.ContactResponse
// @Failure 400 {object} httperr.Response
// @Router /api/hosts [post]
func (h *HostHandler) Create(c *gin.Context) { h.create(c) }

// @Summary Get host
// @Tags hosts
// @Produce json
// @Param id path string true "Host ID"
// @Success 200 {object} resdto.ContactResponse
// @Failure 404 {object} httperr.Response
// @Router /api/hosts/{id} [get]
func (h *HostHandler) Get(c *gin.Context) { h.get(c) }

// @Summary List hosts
// @Tags hosts
// @Produce json
// @Success 200 {array} resdto.ContactResponse
// @Router /api/hosts [get]
func (h *HostHandler) List(c *gin.Context) { h.list(c) }
