package handler

import (
	app_errors "siteforge/internal/errors"
	"siteforge/internal/response"

	"github.com/gin-gonic/gin"
)

// UploadImage stores an uploaded image and returns its public URL. The
// editor or agent then attaches the URL to section content via the
// set_section_image action.
// POST /api/sites/:slug/images
func (s *Server) UploadImage(c *gin.Context) {
	business := s.findBusiness(c)
	if business == nil {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrBadRequest, "missing file field"))
		return
	}

	url, err := s.UploadService.SaveImage(file)
	if HandleServiceError(c, err) {
		return
	}

	response.Success(c, gin.H{"url": url})
}
