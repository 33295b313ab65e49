package handler

import (
	"net/http"

	"github.com/ctabares06/where-my-cash-goes/internal/service"
	"github.com/ctabares06/where-my-cash-goes/internal/util"
	"github.com/ctabares06/where-my-cash-goes/internal/validate"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TransactionHandler struct {
	Service *service.TransactionService
}

func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{Service: service.NewTransactionService(db)}
}

// transactionType is required only when no category reference supplies the
// type semantics.
func missingCategory(obj map[string]any) bool {
	v, ok := obj["categoryId"]
	return !ok || v == nil
}

var createTransactionShape = validate.Shape{
	Name: "CreateTransaction",
	Fields: []validate.Field{
		{Name: "quantity", Checks: []validate.Check{validate.IsInt}},
		{Name: "description", Checks: []validate.Check{validate.IsString}},
		{Name: "categoryId", Optional: true, Checks: []validate.Check{validate.IsUUID}},
		{Name: "tags", Optional: true, Checks: []validate.Check{validate.IsUUIDList}},
		{Name: "transactionType", When: missingCategory, Checks: []validate.Check{validate.IsEnum("income", "expense")}},
	},
}

var updateTransactionShape = validate.Shape{
	Name: "UpdateTransaction",
	Fields: []validate.Field{
		{Name: "quantity", Optional: true, Checks: []validate.Check{validate.IsInt}},
		{Name: "description", Optional: true, Checks: []validate.Check{validate.IsString}},
		{Name: "categoryId", Optional: true, Checks: []validate.Check{validate.IsUUID}},
		{Name: "tags", Optional: true, Checks: []validate.Check{validate.IsUUIDList}},
		{Name: "transactionType", Optional: true, Checks: []validate.Check{validate.IsEnum("income", "expense")}},
	},
}

func (h *TransactionHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	inputs, batch, violations, err := validate.Payload[service.TransactionInput](body, createTransactionShape)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, err.Error())
		return
	}
	if violations != nil {
		abortWith(c, service.BadRequest(violations...))
		return
	}

	if batch {
		txs, serr := h.Service.CreateBatch(user.ID, inputs)
		if serr != nil {
			abortWith(c, serr)
			return
		}
		util.Success(c, util.Response{"transactions": txs})
		return
	}

	tx, serr := h.Service.Create(user.ID, inputs[0])
	if serr != nil {
		abortWith(c, serr)
		return
	}
	util.Success(c, util.Response{"transaction": tx})
}

func (h *TransactionHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	page, limit := pageParams(c)
	txs, serr := h.Service.List(user.ID, page, limit)
	if serr != nil {
		abortWith(c, serr)
		return
	}
	util.Success(c, util.Response{"transactions": txs})
}

func (h *TransactionHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	tx, serr := h.Service.Get(c.Param("id"), user.ID)
	if serr != nil {
		abortWith(c, serr)
		return
	}
	util.Success(c, util.Response{"transaction": tx})
}

func (h *TransactionHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	patch, violations, err := validate.One[service.TransactionPatch](body, updateTransactionShape)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, err.Error())
		return
	}
	if violations != nil {
		abortWith(c, service.BadRequest(violations...))
		return
	}

	tx, serr := h.Service.Update(c.Param("id"), user.ID, patch)
	if serr != nil {
		abortWith(c, serr)
		return
	}
	util.Success(c, util.Response{"transaction": tx})
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	tx, serr := h.Service.Delete(c.Param("id"), user.ID)
	if serr != nil {
		abortWith(c, serr)
		return
	}
	util.Success(c, util.Response{"transaction": tx})
}
