package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumeapi/internal/model"
	"resumeapi/internal/service"
)

// UploadFormField is the multipart field carrying the résumé file.
const UploadFormField = "resume"

// analyzeTextRequest is the body of POST /analyze-text.
type analyzeTextRequest struct {
	Text string `json:"text"`
}

type downloadResponse struct {
	URL string `json:"url"`
}

// analysisStatus is 422 for records that finished in the error state.
func analysisStatus(res *model.Resume, ok int) int {
	if res.Analysis == nil || !res.Analysis.OK() {
		return fiber.StatusUnprocessableEntity
	}
	return ok
}

// AnalyzeResume godoc
// @Summary Upload and analyse a résumé
// @Description Accepts PDF, DOCX or TXT in the multipart field "resume".
// @Tags resumes
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "Résumé file"
// @Success 201 {object} model.Resume
// @Failure 400 {object} errorPayload
// @Failure 413 {object} errorPayload
// @Failure 422 {object} model.Resume
// @Router /analyze-resume [post]
func AnalyzeResume(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile(UploadFormField)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		if fh.Filename == "" {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		res, err := svc.Analyze(c.UserContext(), f, fh.Filename, ct, fh.Size)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUnsupportedFormat):
				return writeError(c, fiber.StatusBadRequest, "UNSUPPORTED_FORMAT", "unsupported file format")
			case errors.Is(err, service.ErrFileTooLarge):
				return writeError(c, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file too large")
			}
			return internalError(c, err)
		}
		return c.Status(analysisStatus(res, fiber.StatusCreated)).JSON(res)
	}
}

// AnalyzeText godoc
// @Summary Analyse pasted résumé text
// @Description The result is not stored.
// @Tags resumes
// @Accept json
// @Produce json
// @Param body body analyzeTextRequest true "Résumé text"
// @Success 200 {object} model.Resume
// @Failure 400 {object} errorPayload
// @Failure 422 {object} model.Resume
// @Router /analyze-text [post]
func AnalyzeText(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req analyzeTextRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "body must be JSON with a text field")
		}

		res, err := svc.AnalyzeText(c.UserContext(), req.Text)
		if err != nil {
			return internalError(c, err)
		}
		return c.Status(analysisStatus(res, fiber.StatusOK)).JSON(res)
	}
}

// ListResumes godoc
// @Summary List analysed résumés
// @Tags resumes
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Offset" default(0)
// @Param status query string false "success or error"
// @Success 200 {object} service.ResumeListResult
// @Failure 400 {object} errorPayload
// @Router /resumes [get]
func ListResumes(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset, c.Query("status"))
		if err != nil {
			if errors.Is(err, service.ErrInvalidStatus) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_STATUS", "status must be success or error")
			}
			return internalError(c, err)
		}
		return c.JSON(res)
	}
}

// GetResume godoc
// @Summary Get one résumé analysis
// @Tags resumes
// @Produce json
// @Param id path string true "Resume ID"
// @Success 200 {object} model.Resume
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /resumes/{id} [get]
func GetResume(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := resumeID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		res, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return lookupError(c, err)
		}
		return c.JSON(res)
	}
}

// ReanalyzeResume godoc
// @Summary Re-run the analysis on a stored résumé
// @Tags resumes
// @Produce json
// @Param id path string true "Resume ID"
// @Success 200 {object} model.Resume
// @Failure 404 {object} errorPayload
// @Failure 422 {object} model.Resume
// @Router /resumes/{id}/reanalyze [post]
func ReanalyzeResume(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := resumeID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		res, err := svc.Reanalyze(c.UserContext(), id)
		if err != nil {
			return lookupError(c, err)
		}
		return c.Status(analysisStatus(res, fiber.StatusOK)).JSON(res)
	}
}

// DownloadResume godoc
// @Summary Presigned download link for the original file
// @Tags resumes
// @Produce json
// @Param id path string true "Resume ID"
// @Success 200 {object} downloadResponse
// @Failure 404 {object} errorPayload
// @Router /resumes/{id}/download [get]
func DownloadResume(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := resumeID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		url, err := svc.DownloadURL(c.UserContext(), id)
		if err != nil {
			return lookupError(c, err)
		}
		return c.JSON(downloadResponse{URL: url})
	}
}

// DeleteResume godoc
// @Summary Delete a résumé and its stored file
// @Tags resumes
// @Param id path string true "Resume ID"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /resumes/{id} [delete]
func DeleteResume(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := resumeID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return lookupError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func resumeID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

func lookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrNotFound) {
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resume not found")
	}
	return internalError(c, err)
}
