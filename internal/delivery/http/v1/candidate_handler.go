package v1

import (
	"net/http"
	"strconv"

	"go-candidate-intake/internal/delivery/http/response"
	"go-candidate-intake/internal/domain"
	"go-candidate-intake/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := r.Group("/candidates")
	{
		candidates.POST("", handler.AddCandidate)
		candidates.GET("/:id", handler.GetCandidate)
	}
}

// AddCandidate godoc
// @Summary      Add a new candidate
// @Description  Validate and persist a candidate with optional educations, work experiences and CV
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body      domain.CandidateSubmission  true  "Candidate submission"
// @Success      201  {object}  response.Response{data=domain.Candidate}
// @Failure      400  {object}  response.Response
// @Router       /candidates [post]
func (h *CandidateHandler) AddCandidate(c *gin.Context) {
	var data domain.CandidateSubmission
	if err := c.ShouldBindJSON(&data); err != nil {
		response.Error(c, http.StatusBadRequest, "Error adding candidate", err.Error())
		return
	}

	candidate, err := h.candidateUC.AddCandidate(c.Request.Context(), &data)
	if err != nil {
		// Every rejection on the write path, validation or store, is a 400
		// with the failure message passed through.
		response.Error(c, http.StatusBadRequest, "Error adding candidate", errorMessage(err))
		return
	}

	response.Success(c, http.StatusCreated, "Candidate added successfully", candidate)
}

// GetCandidate godoc
// @Summary      Get a candidate profile
// @Description  Fetch a candidate with its education, work experience and resume collections
// @Tags         candidates
// @Produce      json
// @Param        id   path      int  true  "Candidate ID"
// @Success      200  {object}  domain.CandidateProfile
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid candidate ID", nil)
		return
	}

	profile, err := h.candidateUC.GetCandidate(c.Request.Context(), id)
	if err != nil {
		if apperror.IsNotFound(err) {
			response.Error(c, http.StatusNotFound, "Candidate not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Error retrieving candidate", errorMessage(err))
		return
	}

	c.JSON(http.StatusOK, profile)
}

func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "Unknown error"
	}
	return err.Error()
}
