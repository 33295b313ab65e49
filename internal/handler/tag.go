package handler

import (
	"net/http"

	"github.com/ctabares06/where-my-cash-goes/internal/service"
	"github.com/ctabares06/where-my-cash-goes/internal/util"
	"github.com/ctabares06/where-my-cash-goes/internal/validate"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TagHandler struct {
	Service *service.TagService
}

func NewTagHandler(db *gorm.DB) *TagHandler {
	return &TagHandler{Service: service.NewTagService(db)}
}

var createTagShape = validate.Shape{
	Name: "CreateTag",
	Fields: []validate.Field{
		{Name: "name", Checks: []validate.Check{validate.IsString, validate.NotEmpty}},
	},
}

var updateTagShape = validate.Shape{
	Name: "UpdateTag",
	Fields: []validate.Field{
		{Name: "name", Optional: true, Checks: []validate.Check{validate.IsString, validate.NotEmpty}},
	},
}

func (h *TagHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	inputs, batch, violations, err := validate.Payload[service.TagInput](body, createTagShape)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, err.Error())
		return
	}
	if violations != nil {
		abortWith(c, service.BadRequest(violations...))
		return
	}

	if batch {
		tags, serr := h.Service.CreateBatch(user.ID, inputs)
		if serr != nil {
			abortWith(c, serr)
			return
		}
		util.Success(c, util.Response{"tags": tags})
		return
	}

	tag, serr := h.Service.Create(user.ID, inputs[0])
	if serr != nil {
		abortWith(c, serr)
		return
	}
	util.Success(c, util.Response{"tag": tag})
}

func (h *TagHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	page, limit := pageParams(c)
	tags, serr := h.Service.List(user.ID, page, limit)
	if serr != nil {
		abortWith(c, serr)
		return
	}
	util.Success(c, util.Response{"tags": tags})
}

func (h *TagHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	tag, serr := h.Service.Get(c.Param("id"), user.ID)
	if serr != nil {
		abortWith(c, serr)
		return
	}
	util.Success(c, util.Response{"tag": tag})
}

func (h *TagHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	patch, violations, err := validate.One[service.TagPatch](body, updateTagShape)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, err.Error())
		return
	}
	if violations != nil {
		abortWith(c, service.BadRequest(violations...))
		return
	}

	tag, serr := h.Service.Update(c.Param("id"), user.ID, patch)
	if serr != nil {
		abortWith(c, serr)
		return
	}
	util.Success(c, util.Response{"tag": tag})
}

func (h *TagHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	tag, serr := h.Service.Delete(c.Param("id"), user.ID)
	if serr != nil {
		abortWith(c, serr)
		return
	}
	util.Success(c, util.Response{"tag": tag})
}
