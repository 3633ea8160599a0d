package handlers

import (
	"context"

	"media-service/internal/models"
	"media-service/internal/recommend"
	"media-service/internal/service"
	"media-service/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Counter for content page views across all sections
	contentViews = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_content_views_total",
			Help: "Total number of content page views",
		},
		[]string{"content_type", "section"},
	)

	// Counter for content mutations from the admin CMS
	contentMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_content_mutations_total",
			Help: "Total number of content create/update/delete operations",
		},
		[]string{"content_type", "operation"},
	)
)

type ArticleHandler struct {
	Service  *service.ArticleService
	Selector *recommend.Selector
}

func NewArticleHandler(s *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{Service: s, Selector: recommend.NewSelector()}
}

func (h *ArticleHandler) ListArticles(c *gin.Context) {
	articles, err := h.Service.ListPublished(context.Background(), c.Query("section"))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list articles", err)
		return
	}
	utils.SuccessResponse(c, "articles", articles)
}

func (h *ArticleHandler) ListAllArticles(c *gin.Context) {
	articles, err := h.Service.ListAll(context.Background())
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list articles", err)
		return
	}
	utils.SuccessResponse(c, "articles", articles)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.Service.GetArticle(context.Background(), c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Article not found")
		return
	}
	contentViews.WithLabelValues("article", article.Section).Inc()
	// Best effort; a lost view never blocks the read.
	_ = h.Service.RecordView(context.Background(), article.ID)
	utils.SuccessResponse(c, "article", article)
}

func (h *ArticleHandler) GetArticleBySlug(c *gin.Context) {
	article, err := h.Service.GetBySlug(context.Background(), c.Param("slug"))
	if err != nil {
		utils.NotFoundResponse(c, "Article not found")
		return
	}
	contentViews.WithLabelValues("article", article.Section).Inc()
	_ = h.Service.RecordView(context.Background(), article.ID)
	utils.SuccessResponse(c, "article", article)
}

// GetRelated serves the "more like this" rail on story pages.
func (h *ArticleHandler) GetRelated(c *gin.Context) {
	ctx := context.Background()
	article, err := h.Service.GetArticle(ctx, c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Article not found")
		return
	}
	candidates, err := h.Service.ListPublished(ctx, "")
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load candidates", err)
		return
	}
	related := h.Selector.Related(article, candidates, 4)
	utils.SuccessResponse(c, "related articles", related)
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var article models.Article
	if err := c.ShouldBindJSON(&article); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err)
		return
	}
	if err := h.Service.CreateArticle(context.Background(), &article); err != nil {
		utils.InternalErrorResponse(c, "Failed to create article", err)
		return
	}
	contentMutations.WithLabelValues("article", "create").Inc()
	utils.CreatedResponse(c, "article created", article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	var update map[string]interface{}
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err)
		return
	}
	if err := h.Service.UpdateArticle(context.Background(), c.Param("id"), update); err != nil {
		utils.InternalErrorResponse(c, "Failed to update article", err)
		return
	}
	contentMutations.WithLabelValues("article", "update").Inc()
	utils.SuccessResponse(c, "article updated", nil)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	if err := h.Service.DeleteArticle(context.Background(), c.Param("id")); err != nil {
		utils.InternalErrorResponse(c, "Failed to delete article", err)
		return
	}
	contentMutations.WithLabelValues("article", "delete").Inc()
	utils.SuccessResponse(c, "article deleted", nil)
}
