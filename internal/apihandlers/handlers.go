package apihandlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"lexitag/internal/app"
	"lexitag/internal/services"
	"lexitag/internal/session"
)

// SessionHeader carries the session ID on every request after creation.
const SessionHeader = "X-Session-Id"

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(a *app.App) *APIHandler {
	return &APIHandler{App: a}
}

// RegisterRoutes attaches all API routes to the router group.
func (h *APIHandler) RegisterRoutes(v1 *gin.RouterGroup) {
	v1.POST("/session", h.CreateSessionHandler)

	v1.GET("/categories", h.ListCategoriesHandler)
	v1.POST("/categories", h.AddCategoryHandler)
	v1.PUT("/categories/:name", h.UpdateCategoryHandler)
	v1.DELETE("/categories/:name", h.DeleteCategoryHandler)

	v1.POST("/dataset", h.UploadDatasetHandler)
	v1.GET("/dataset/preview", h.PreviewDatasetHandler)

	v1.POST("/classify", h.ClassifyHandler)
	v1.GET("/results", h.ResultsHandler)
	v1.GET("/results/summary", h.SummaryHandler)
	v1.GET("/results/download", h.DownloadHandler)
}

// CreateSessionHandler starts a new session with a seeded dictionary.
func (h *APIHandler) CreateSessionHandler(c *gin.Context) {
	sess, err := h.App.Sessions.Create(c.Request.Context())
	if err != nil {
		Internal(c, fmt.Sprintf("CreateSessionHandler: failed to create session: %v", err))
		return
	}
	cats, err := sess.Dict.ListCategories(c.Request.Context())
	if err != nil {
		Internal(c, fmt.Sprintf("CreateSessionHandler: failed to list categories: %v", err))
		return
	}
	c.Header(SessionHeader, sess.ID)
	c.JSON(http.StatusCreated, gin.H{
		"session_id": sess.ID,
		"categories": cats,
	})
}

// resolveSession finds the caller's session from the session header. It
// writes the error response itself when resolution fails.
func (h *APIHandler) resolveSession(c *gin.Context) (*session.Session, bool) {
	id := strings.TrimSpace(c.GetHeader(SessionHeader))
	if id == "" {
		BadRequest(c, "missing "+SessionHeader+" header; create a session first")
		return nil, false
	}
	sess, err := h.App.Sessions.Get(id)
	if err != nil {
		ServiceError(c, err)
		return nil, false
	}
	return sess, true
}

// --- Dictionary management ---

type categoryRequest struct {
	Name string `json:"name"`
	// Keywords may come as a list or as newline-separated text, matching
	// how a textarea submits them.
	Keywords     []string `json:"keywords"`
	KeywordsText string   `json:"keywords_text"`
}

func (r categoryRequest) keywordLines() []string {
	if len(r.Keywords) > 0 {
		return r.Keywords
	}
	if r.KeywordsText == "" {
		return nil
	}
	return strings.Split(r.KeywordsText, "\n")
}

func (h *APIHandler) ListCategoriesHandler(c *gin.Context) {
	sess, ok := h.resolveSession(c)
	if !ok {
		return
	}
	cats, err := sess.Dict.ListCategories(c.Request.Context())
	if err != nil {
		Internal(c, fmt.Sprintf("ListCategoriesHandler: %v", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats})
}

func (h *APIHandler) AddCategoryHandler(c *gin.Context) {
	sess, ok := h.resolveSession(c)
	if !ok {
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	cat, err := sess.Dict.AddCategory(c.Request.Context(), req.Name, req.keywordLines())
	if err != nil {
		ServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": cat})
}

func (h *APIHandler) UpdateCategoryHandler(c *gin.Context) {
	sess, ok := h.resolveSession(c)
	if !ok {
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	cat, err := sess.Dict.UpdateCategory(c.Request.Context(), c.Param("name"), req.keywordLines())
	if err != nil {
		ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": cat})
}

func (h *APIHandler) DeleteCategoryHandler(c *gin.Context) {
	sess, ok := h.resolveSession(c)
	if !ok {
		return
	}
	if err := sess.Dict.DeleteCategory(c.Request.Context(), c.Param("name")); err != nil {
		ServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Dataset upload and preview ---

// UploadDatasetHandler accepts a multipart CSV upload under the "file"
// field and replaces the session's dataset.
func (h *APIHandler) UploadDatasetHandler(c *gin.Context) {
	sess, ok := h.resolveSession(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		BadRequest(c, "no CSV file provided under field 'file'")
		return
	}
	defer file.Close()

	if header.Size > h.App.Config.Upload.MaxBytes {
		BadRequest(c, fmt.Sprintf("file too large: %d bytes (limit %d)", header.Size, h.App.Config.Upload.MaxBytes))
		return
	}

	ds, err := h.App.Datasets.ParseCSV(file, header.Filename)
	if err != nil {
		ServiceError(c, err)
		return
	}
	sess.SetDataset(ds)

	log.WithFields(log.Fields{
		"session": sess.ID,
		"file":    header.Filename,
		"rows":    ds.RowCount(),
	}).Info("dataset uploaded")

	c.JSON(http.StatusCreated, gin.H{
		"name":    ds.Name,
		"columns": ds.Header,
		"rows":    ds.RowCount(),
	})
}

func (h *APIHandler) PreviewDatasetHandler(c *gin.Context) {
	sess, ok := h.resolveSession(c)
	if !ok {
		return
	}
	ds, err := sess.Dataset()
	if err != nil {
		ServiceError(c, err)
		return
	}

	rows := h.App.Config.Preview.Rows
	if v := c.Query("rows"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			BadRequest(c, "invalid rows: "+v)
			return
		}
		rows = parsed
	}
	c.JSON(http.StatusOK, gin.H{"dataset": h.App.Datasets.Preview(ds, rows)})
}

// --- Classification ---

type classifyRequest struct {
	Column string `json:"column"`
}

// ClassifyHandler runs the classifier over the uploaded dataset using the
// session's current dictionary and returns the summary.
func (h *APIHandler) ClassifyHandler(c *gin.Context) {
	sess, ok := h.resolveSession(c)
	if !ok {
		return
	}
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.Column == "" {
		BadRequest(c, "missing required field: column")
		return
	}

	ds, err := sess.Dataset()
	if err != nil {
		ServiceError(c, err)
		return
	}

	svc := services.NewClassificationService(sess.Dict)
	labeled, err := svc.ClassifyDataset(c.Request.Context(), ds, req.Column)
	if err != nil {
		ServiceError(c, err)
		return
	}
	sess.SetClassified(labeled, req.Column)

	summary, err := svc.Summarize(labeled)
	if err != nil {
		Internal(c, fmt.Sprintf("ClassifyHandler: summarize: %v", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"column":  req.Column,
		"summary": summary,
	})
}

// ResultsHandler returns classified rows, optionally filtered by
// "all", "classified", "unclassified", or a category name.
func (h *APIHandler) ResultsHandler(c *gin.Context) {
	sess, ok := h.resolveSession(c)
	if !ok {
		return
	}
	labeled, err := sess.Classified()
	if err != nil {
		ServiceError(c, err)
		return
	}

	svc := services.NewClassificationService(sess.Dict)
	filtered, err := svc.FilterResults(labeled, c.DefaultQuery("filter", services.FilterAll))
	if err != nil {
		ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dataset": filtered})
}

func (h *APIHandler) SummaryHandler(c *gin.Context) {
	sess, ok := h.resolveSession(c)
	if !ok {
		return
	}
	labeled, err := sess.Classified()
	if err != nil {
		ServiceError(c, err)
		return
	}

	summary, err := services.NewClassificationService(sess.Dict).Summarize(labeled)
	if err != nil {
		ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// DownloadHandler streams the classified dataset back as a CSV attachment.
func (h *APIHandler) DownloadHandler(c *gin.Context) {
	sess, ok := h.resolveSession(c)
	if !ok {
		return
	}
	labeled, err := sess.Classified()
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="classified_data.csv"`)
	c.Status(http.StatusOK)
	if err := h.App.Datasets.WriteCSV(c.Writer, labeled); err != nil {
		log.WithField("session", sess.ID).Errorf("streaming classified CSV: %v", err)
	}
}
