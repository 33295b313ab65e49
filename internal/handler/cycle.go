package handler

import (
	"net/http"

	"github.com/ctabares06/where-my-cash-goes/internal/service"
	"github.com/ctabares06/where-my-cash-goes/internal/util"
	"github.com/ctabares06/where-my-cash-goes/internal/validate"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CycleHandler struct {
	Service *service.CycleService
}

func NewCycleHandler(db *gorm.DB) *CycleHandler {
	return &CycleHandler{Service: service.NewCycleService(db)}
}

var createCycleShape = validate.Shape{
	Name: "CreateCycle",
	Fields: []validate.Field{
		{Name: "label", Checks: []validate.Check{validate.IsString}},
		{Name: "duration", Checks: []validate.Check{validate.IsInt}},
		{Name: "isActive", Optional: true, Checks: []validate.Check{validate.IsBool}},
	},
}

var updateCycleShape = validate.Shape{
	Name: "UpdateCycle",
	Fields: []validate.Field{
		{Name: "label", Optional: true, Checks: []validate.Check{validate.IsString}},
		{Name: "duration", Optional: true, Checks: []validate.Check{validate.IsInt}},
		{Name: "isActive", Optional: true, Checks: []validate.Check{validate.IsBool}},
	},
}

func (h *CycleHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	inputs, batch, violations, err := validate.Payload[service.CycleInput](body, createCycleShape)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, err.Error())
		return
	}
	if violations != nil {
		abortWith(c, service.BadRequest(violations...))
		return
	}

	if batch {
		cycles, serr := h.Service.CreateBatch(user.ID, inputs)
		if serr != nil {
			abortWith(c, serr)
			return
		}
		util.Success(c, util.Response{"cycles": cycles})
		return
	}

	cycle, serr := h.Service.Create(user.ID, inputs[0])
	if serr != nil {
		abortWith(c, serr)
		return
	}
	util.Success(c, util.Response{"cycle": cycle})
}

func (h *CycleHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	page, limit := pageParams(c)
	cycles, serr := h.Service.List(user.ID, page, limit)
	if serr != nil {
		abortWith(c, serr)
		return
	}
	util.Success(c, util.Response{"cycles": cycles})
}

func (h *CycleHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	cycle, serr := h.Service.Get(c.Param("id"), user.ID)
	if serr != nil {
		abortWith(c, serr)
		return
	}
	util.Success(c, util.Response{"cycle": cycle})
}

func (h *CycleHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	patch, violations, err := validate.One[service.CyclePatch](body, updateCycleShape)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, err.Error())
		return
	}
	if violations != nil {
		abortWith(c, service.BadRequest(violations...))
		return
	}

	cycle, serr := h.Service.Update(c.Param("id"), user.ID, patch)
	if serr != nil {
		abortWith(c, serr)
		return
	}
	util.Success(c, util.Response{"cycle": cycle})
}

func (h *CycleHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	cycle, serr := h.Service.Delete(c.Param("id"), user.ID)
	if serr != nil {
		abortWith(c, serr)
		return
	}
	util.Success(c, util.Response{"cycle": cycle})
}
