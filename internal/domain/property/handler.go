package property

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"realestate/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List returns all properties newest-first, run through the filter
// engine when filter/sort query params are present.
func (h *Handler) List(c *gin.Context) {
	props, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to load properties")
		return
	}

	filters := ParseFilters(
		c.Query("type"),
		c.Query("status"),
		c.Query("min_price"),
		c.Query("max_price"),
		c.Query("min_bedrooms"),
		c.Query("city"),
	)
	sortKey := c.DefaultQuery("sort", SortNewest)

	result := FilterAndSort(props, filters, sortKey)

	response.Success(c, http.StatusOK, gin.H{
		"properties": result,
		"total":      len(result),
	})
}

// NewForm returns the create-form context: enum domains and upload
// limits. The route itself is gated behind the agent role.
func (h *Handler) NewForm(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"types":          Types(),
		"statuses":       Statuses(),
		"default_status": StatusForSale,
		"max_image_kb":   MaxImageKB,
	})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid form data")
		return
	}

	files := formFiles(c)

	if ve := ValidateCreate(&req, files); ve != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", ve.Fields)
		return
	}

	ownerID := c.GetInt64("user_id")
	p, err := h.service.Create(c.Request.Context(), ownerID, &req, files)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORAGE_FAILURE", "Failed to create property")
		return
	}

	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		notFoundOrInternal(c, err)
		return
	}

	response.Success(c, http.StatusOK, p)
}

// EditForm returns the edit-form context: current values plus the enum
// domains the form renders.
func (h *Handler) EditForm(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		notFoundOrInternal(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"property": p,
		"types":    Types(),
		"statuses": Statuses(),
	})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid form data")
		return
	}

	deleteIDs, ve := formDeleteImages(c)
	if ve != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", ve.Fields)
		return
	}
	req.DeleteImages = deleteIDs

	files := formFiles(c)

	validationErr, err := ValidateUpdate(c.Request.Context(), h.service.repo, &req, files)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to validate request")
		return
	}
	if validationErr != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", validationErr.Fields)
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, &req, files)
	if err != nil {
		if errors.Is(err, ErrPropertyNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORAGE_FAILURE", "Failed to update property")
		return
	}

	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		notFoundOrInternal(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "deleted"})
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return 0, false
	}
	return id, true
}

func notFoundOrInternal(c *gin.Context, err error) {
	if errors.Is(err, ErrPropertyNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL", "Request failed")
}

// formFiles collects the uploaded images. Both images[] (HTML form
// convention, what the original client sends) and images are accepted.
func formFiles(c *gin.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	if files := form.File["images[]"]; len(files) > 0 {
		return files
	}
	return form.File["images"]
}

// formDeleteImages parses delete_images[] ids. A non-numeric id is a
// validation error, unlike numeric filter params which are parse-or-skip.
func formDeleteImages(c *gin.Context) ([]int64, *ValidationError) {
	raw := c.PostFormArray("delete_images[]")
	if len(raw) == 0 {
		raw = c.PostFormArray("delete_images")
	}

	ids := make([]int64, 0, len(raw))
	ve := newValidationError()
	for i, v := range raw {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			ve.Fields[strconv.Itoa(i)] = "Invalid image id"
			continue
		}
		ids = append(ids, id)
	}

	if len(ve.Fields) > 0 {
		prefixed := newValidationError()
		for k, msg := range ve.Fields {
			prefixed.Fields["delete_images."+k] = msg
		}
		return nil, prefixed
	}
	return ids, nil
}
