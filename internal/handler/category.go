package handler

import (
	"net/http"

	"github.com/ctabares06/where-my-cash-goes/internal/service"
	"github.com/ctabares06/where-my-cash-goes/internal/util"
	"github.com/ctabares06/where-my-cash-goes/internal/validate"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CategoryHandler exposes the category endpoints.
type CategoryHandler struct {
	Service *service.CategoryService
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{Service: service.NewCategoryService(db)}
}

var createCategoryShape = validate.Shape{
	Name: "CreateCategory",
	Fields: []validate.Field{
		{Name: "name", Checks: []validate.Check{validate.IsString, validate.NotEmpty}},
		{Name: "unicode", Checks: []validate.Check{validate.IsUnicode}},
		{Name: "transactionType", Checks: []validate.Check{validate.IsEnum("income", "expense")}},
	},
}

var updateCategoryShape = validate.Shape{
	Name: "UpdateCategory",
	Fields: []validate.Field{
		{Name: "name", Optional: true, Checks: []validate.Check{validate.IsString, validate.NotEmpty}},
		{Name: "unicode", Optional: true, Checks: []validate.Check{validate.IsUnicode}},
		{Name: "transactionType", Optional: true, Checks: []validate.Check{validate.IsEnum("income", "expense")}},
	},
}

// Create accepts a single category object or an array of them.
func (h *CategoryHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	inputs, batch, violations, err := validate.Payload[service.CategoryInput](body, createCategoryShape)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, err.Error())
		return
	}
	if violations != nil {
		abortWith(c, service.BadRequest(violations...))
		return
	}

	if batch {
		cats, serr := h.Service.CreateBatch(user.ID, inputs)
		if serr != nil {
			abortWith(c, serr)
			return
		}
		util.Success(c, util.Response{"categories": cats})
		return
	}

	cat, serr := h.Service.Create(user.ID, inputs[0])
	if serr != nil {
		abortWith(c, serr)
		return
	}
	util.Success(c, util.Response{"category": cat})
}

func (h *CategoryHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	page, limit := pageParams(c)
	cats, serr := h.Service.List(user.ID, page, limit)
	if serr != nil {
		abortWith(c, serr)
		return
	}
	util.Success(c, util.Response{"categories": cats})
}

func (h *CategoryHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	cat, serr := h.Service.Get(c.Param("id"), user.ID)
	if serr != nil {
		abortWith(c, serr)
		return
	}
	util.Success(c, util.Response{"category": cat})
}

func (h *CategoryHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	patch, violations, err := validate.One[service.CategoryPatch](body, updateCategoryShape)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, err.Error())
		return
	}
	if violations != nil {
		abortWith(c, service.BadRequest(violations...))
		return
	}

	cat, serr := h.Service.Update(c.Param("id"), user.ID, patch)
	if serr != nil {
		abortWith(c, serr)
		return
	}
	util.Success(c, util.Response{"category": cat})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	cat, serr := h.Service.Delete(c.Param("id"), user.ID)
	if serr != nil {
		abortWith(c, serr)
		return
	}
	util.Success(c, util.Response{"category": cat})
}
