package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ctabares06/where-my-cash-goes/internal/models"
	"github.com/ctabares06/where-my-cash-goes/internal/service"
	"github.com/ctabares06/where-my-cash-goes/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler streams the caller's transactions as CSV or XLSX.
type ExportHandler struct {
	Service *service.TransactionService
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{Service: service.NewTransactionService(db)}
}

var exportHeaders = []string{"Type", "Quantity", "Description", "Category", "Tags", "Created"}

func exportRow(tx *models.Transaction) []string {
	txType := tx.TransactionType
	category := ""
	if tx.Category != nil {
		category = tx.Category.Name
		if txType == "" {
			txType = tx.Category.TransactionType
		}
	}
	tagNames := make([]string, 0, len(tx.Tags))
	for _, t := range tx.Tags {
		tagNames = append(tagNames, t.Name)
	}
	return []string{
		txType,
		strconv.FormatInt(tx.Quantity, 10),
		tx.Description,
		category,
		strings.Join(tagNames, ", "),
		tx.CreatedAt.Format("2006-01-02"),
	}
}

// ExportCSV writes all of the user's transactions as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	txs, serr := h.Service.List(user.ID, nil, nil)
	if serr != nil {
		abortWith(c, serr)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"",
		time.Now().Format("20060102")))

	// UTF-8 BOM so spreadsheet apps detect the encoding
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for i := range txs {
		writer.Write(exportRow(&txs[i]))
	}
}

// ExportXLSX writes all of the user's transactions as a spreadsheet.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	txs, serr := h.Service.List(user.ID, nil, nil)
	if serr != nil {
		abortWith(c, serr)
		return
	}

	f := excelize.NewFile()
	sheetName := "Transactions"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create sheet")
		return
	}
	f.SetActiveSheet(index)

	for i, head := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, head)
	}

	for idx := range txs {
		row := idx + 2
		for col, val := range exportRow(&txs[idx]) {
			cell := fmt.Sprintf("%c%d", 'A'+col, row)
			f.SetCellValue(sheetName, cell, val)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 30)
	f.SetColWidth(sheetName, "D", "D", 15)
	f.SetColWidth(sheetName, "E", "E", 20)
	f.SetColWidth(sheetName, "F", "F", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to export")
	}
}
