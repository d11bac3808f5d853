package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gcbaptista/go-word-kernel/config"
	"github.com/gcbaptista/go-word-kernel/services"
)

// FitRequest is the body of POST /kernels and POST /gram.
// Omitted settings fields keep the server defaults.
type FitRequest struct {
	Corpus   []string              `json:"corpus"`
	Settings config.KernelSettings `json:"settings"`
}

// VectorizeRequest is the body of POST /kernels/:kernelId/vectorize.
type VectorizeRequest struct {
	Text string `json:"text"`
}

// SimilarityRequest is the body of POST /kernels/:kernelId/similarity.
type SimilarityRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

// GramRequest is the body of POST /kernels/:kernelId/gram.
type GramRequest struct {
	Documents []string `json:"documents"`
}

// API holds dependencies for API handlers, primarily the kernel manager.
type API struct {
	kernels services.KernelManager
	logger  *logrus.Entry
}

// NewAPI creates a new API handler structure.
func NewAPI(kernels services.KernelManager, logger *logrus.Entry) *API {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &API{
		kernels: kernels,
		logger:  logger.WithField("component", "api"),
	}
}

// SetupRoutes defines all the API routes for the word kernel service.
func SetupRoutes(router *gin.Engine, kernels services.KernelManager, logger *logrus.Entry) {
	apiHandler := NewAPI(kernels, logger)

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Fit and compute the corpus Gram matrix in one call
	router.POST("/gram", apiHandler.FitGramHandler)

	// Kernel management routes
	kernelRoutes := router.Group("/kernels")
	{
		kernelRoutes.POST("", apiHandler.FitKernelHandler)                       // Fit a new kernel
		kernelRoutes.GET("", apiHandler.ListKernelsHandler)                      // List fitted kernels
		kernelRoutes.GET("/:kernelId", apiHandler.GetKernelHandler)              // Kernel details and vocabulary
		kernelRoutes.DELETE("/:kernelId", apiHandler.DeleteKernelHandler)        // Delete a kernel
		kernelRoutes.POST("/:kernelId/vectorize", apiHandler.VectorizeHandler)   // Feature vector of a text
		kernelRoutes.POST("/:kernelId/similarity", apiHandler.SimilarityHandler) // Kernel value of two texts
		kernelRoutes.POST("/:kernelId/gram", apiHandler.GramHandler)             // Gram matrix of documents
	}
}

// HealthCheckHandler reports service liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "go-word-kernel",
		"kernels":   len(api.kernels.ListKernels()),
		"timestamp": time.Now().Unix(),
	})
}

// bindFitRequest decodes a fit request over the default settings.
func (api *API) bindFitRequest(c *gin.Context) (*FitRequest, bool) {
	req := FitRequest{Settings: api.kernels.DefaultSettings()}
	if !ValidateJSONBinding(c, &req) {
		return nil, false
	}

	result := ValidateDocuments("corpus", req.Corpus)
	for _, e := range ValidateKernelSettings(&req.Settings).Errors {
		result.AddError(e.Field, e.Message)
	}
	if result.HasErrors() {
		SendValidationError(c, result)
		return nil, false
	}
	return &req, true
}

// FitKernelHandler fits a kernel on the request corpus.
// Request Body: FitRequest
func (api *API) FitKernelHandler(c *gin.Context) {
	req, ok := api.bindFitRequest(c)
	if !ok {
		return
	}

	info, err := api.kernels.FitKernel(req.Corpus, req.Settings)
	if err != nil {
		api.logger.WithError(err).WithField("documents", len(req.Corpus)).Warn("Fit request failed")
		SendEngineError(c, "fit", "", err)
		return
	}

	c.Header("Location", "/kernels/"+info.ID)
	c.JSON(http.StatusCreated, info)
}

// FitGramHandler fits a kernel on the request corpus and returns its Gram matrix.
// The kernel is not kept.
func (api *API) FitGramHandler(c *gin.Context) {
	req, ok := api.bindFitRequest(c)
	if !ok {
		return
	}

	result, err := api.kernels.FitGram(req.Corpus, req.Settings)
	if err != nil {
		api.logger.WithError(err).WithField("documents", len(req.Corpus)).Warn("Gram request failed")
		SendEngineError(c, "fit", "", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListKernelsHandler lists fitted kernels.
func (api *API) ListKernelsHandler(c *gin.Context) {
	kernels := api.kernels.ListKernels()
	c.JSON(http.StatusOK, gin.H{
		"kernels": kernels,
		"total":   len(kernels),
	})
}

// kernelID reads and validates the kernelId path parameter.
func kernelID(c *gin.Context) (string, bool) {
	id := c.Param("kernelId")
	if result := ValidateKernelID(id); result.HasErrors() {
		SendValidationError(c, result)
		return "", false
	}
	return id, true
}

// GetKernelHandler returns a kernel with its vocabulary and document frequencies.
func (api *API) GetKernelHandler(c *gin.Context) {
	id, ok := kernelID(c)
	if !ok {
		return
	}

	detail, err := api.kernels.GetKernel(id)
	if err != nil {
		SendEngineError(c, "get kernel", id, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// DeleteKernelHandler deletes a kernel.
func (api *API) DeleteKernelHandler(c *gin.Context) {
	id, ok := kernelID(c)
	if !ok {
		return
	}

	if err := api.kernels.DeleteKernel(id); err != nil {
		SendEngineError(c, "delete kernel", id, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Kernel '" + id + "' deleted"})
}

// VectorizeHandler returns the feature vector of a text.
// Request Body: VectorizeRequest
func (api *API) VectorizeHandler(c *gin.Context) {
	id, ok := kernelID(c)
	if !ok {
		return
	}

	var req VectorizeRequest
	if !ValidateJSONBinding(c, &req) {
		return
	}

	result, err := api.kernels.Vectorize(id, req.Text)
	if err != nil {
		SendEngineError(c, "vectorize", id, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SimilarityHandler returns the kernel value of two texts.
// Request Body: SimilarityRequest
func (api *API) SimilarityHandler(c *gin.Context) {
	id, ok := kernelID(c)
	if !ok {
		return
	}

	var req SimilarityRequest
	if !ValidateJSONBinding(c, &req) {
		return
	}

	result, err := api.kernels.Similarity(id, req.A, req.B)
	if err != nil {
		SendEngineError(c, "similarity", id, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GramHandler returns the Gram matrix of the request documents under a kernel.
// Request Body: GramRequest
func (api *API) GramHandler(c *gin.Context) {
	id, ok := kernelID(c)
	if !ok {
		return
	}

	var req GramRequest
	if !ValidateJSONBinding(c, &req) {
		return
	}
	if len(req.Documents) == 0 {
		result := &ValidationResult{Valid: true}
		result.AddError("documents", "At least one document is required")
		SendValidationError(c, result)
		return
	}

	result, err := api.kernels.Gram(id, req.Documents)
	if err != nil {
		SendEngineError(c, "gram", id, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
