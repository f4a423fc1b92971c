package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devsultan06/myjourney2026/models"
	"github.com/devsultan06/myjourney2026/streak"
	"github.com/devsultan06/myjourney2026/utils"
)

// BookController manages the reading list and page progress.
type BookController struct {
	db    *gorm.DB
	clock streak.Clock
}

// NewBookController creates a controller using the wall clock.
func NewBookController(db *gorm.DB) *BookController {
	return &BookController{db: db, clock: streak.SystemClock}
}

func validBookStatus(s string) bool {
	return s == models.BookStatusNotStarted || s == models.BookStatusReading || s == models.BookStatusCompleted
}

// ListBooks returns the user's books, most recently updated first.
func (b *BookController) ListBooks(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40180, "unauthorized")
		return
	}

	q := b.db.Where("user_id = ?", userID)
	if status := strings.TrimSpace(ctx.Query("status")); status != "" {
		q = q.Where("status = ?", status)
	}

	var books []models.Book
	if err := q.Order("updated_at DESC").Find(&books).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50080, "failed to load books")
		return
	}

	utils.Success(ctx, gin.H{"books": books})
}

// CreateBook adds a book to the list.
func (b *BookController) CreateBook(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40181, "unauthorized")
		return
	}

	type request struct {
		Title      string `json:"title" binding:"required"`
		Author     string `json:"author"`
		TotalPages int    `json:"total_pages" binding:"required,gt=0"`
		Status     string `json:"status"`
		Notes      string `json:"notes"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40081, "title and total_pages are required")
		return
	}
	if req.Status == "" {
		req.Status = models.BookStatusNotStarted
	}
	if !validBookStatus(req.Status) {
		utils.Error(ctx, http.StatusBadRequest, 40082, "invalid status")
		return
	}

	book := models.Book{
		UserID:     userID,
		Title:      strings.TrimSpace(req.Title),
		Author:     strings.TrimSpace(req.Author),
		TotalPages: req.TotalPages,
		Status:     req.Status,
		Notes:      utils.Sanitize(req.Notes),
	}
	if req.Status == models.BookStatusReading {
		now := b.clock.Now()
		book.StartDate = &now
	}

	if err := b.db.Create(&book).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50081, "failed to create book")
		return
	}

	utils.Respond(ctx, http.StatusCreated, 0, "success", gin.H{"book": book})
}

// UpdateBook edits an owned book. Advancing the page position appends a book
// activity, and reaching the last page marks the book completed.
func (b *BookController) UpdateBook(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40182, "unauthorized")
		return
	}

	var book models.Book
	if err := b.db.Where("id = ? AND user_id = ?", ctx.Param("id"), userID).First(&book).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40480, "book not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50082, "failed to load book")
		return
	}

	type request struct {
		CurrentPage *int    `json:"current_page"`
		Status      *string `json:"status"`
		Notes       *string `json:"notes"`
		Rating      *int    `json:"rating"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40083, "invalid request payload")
		return
	}

	prevPage := book.CurrentPage
	if req.CurrentPage != nil {
		page := *req.CurrentPage
		if page < 0 || page > book.TotalPages {
			utils.Error(ctx, http.StatusBadRequest, 40084, "current_page out of range")
			return
		}
		book.CurrentPage = page
	}
	if req.Status != nil {
		if !validBookStatus(*req.Status) {
			utils.Error(ctx, http.StatusBadRequest, 40082, "invalid status")
			return
		}
		book.Status = *req.Status
	}
	if req.Notes != nil {
		book.Notes = utils.Sanitize(*req.Notes)
	}
	if req.Rating != nil {
		book.Rating = *req.Rating
	}

	now := b.clock.Now()
	if book.CurrentPage > 0 && book.Status == models.BookStatusNotStarted {
		book.Status = models.BookStatusReading
	}
	if book.Status == models.BookStatusReading && book.StartDate == nil {
		book.StartDate = &now
	}
	if book.CurrentPage >= book.TotalPages && book.TotalPages > 0 {
		book.Status = models.BookStatusCompleted
	}
	if book.Status == models.BookStatusCompleted && book.CompletedDate == nil {
		book.CompletedDate = &now
	}

	pagesRead := book.CurrentPage - prevPage

	err := b.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&book).Error; err != nil {
			return err
		}
		if pagesRead <= 0 {
			return nil
		}
		action := "read"
		details := fmt.Sprintf("%d pages of %s", pagesRead, book.Title)
		if book.Status == models.BookStatusCompleted {
			action = "completed"
			details = book.Title
		}
		return logActivity(tx, userID, streak.CategoryBook, action, details, now)
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50083, "failed to update book")
		return
	}

	utils.Success(ctx, gin.H{"book": book})
}

// DeleteBook removes an owned book.
func (b *BookController) DeleteBook(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40183, "unauthorized")
		return
	}

	res := b.db.Where("id = ? AND user_id = ?", ctx.Param("id"), userID).Delete(&models.Book{})
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50084, "failed to delete book")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(ctx, http.StatusNotFound, 40481, "book not found")
		return
	}

	utils.Success(ctx, gin.H{"message": "book deleted"})
}
