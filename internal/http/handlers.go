package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"shelflink/internal/domain"
	"shelflink/internal/middleware"
	"shelflink/internal/repository"
	"shelflink/internal/service"
)

type Server struct {
	engine   *gin.Engine
	logger   *zap.Logger
	users    *service.UserService
	products *service.ProductService
	chats    *service.ChatService
	stats    *service.StatsService
}

func NewServer(logger *zap.Logger, users *service.UserService, products *service.ProductService, chats *service.ChatService, stats *service.StatsService) *Server {
	r := gin.New()
	r.Use(middleware.Logger(logger), gin.Recovery())
	s := &Server{
		engine:   r,
		logger:   logger,
		users:    users,
		products: products,
		chats:    chats,
		stats:    stats,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := s.engine.Group("/api")
	{
		api.POST("/login", s.login)
		api.GET("/users/:id", s.getUser)

		stores := api.Group("/stores")
		stores.GET(":id", s.getStore)
		stores.GET(":id/products", s.storeProducts)
		stores.GET(":id/sales/by-category", s.storeSalesByCategory)
		stores.GET(":id/waste", s.storeWaste)

		suppliers := api.Group("/suppliers")
		suppliers.GET(":id/stores", s.supplierStores)
		suppliers.GET(":id/chats", s.supplierChats)
		suppliers.GET(":id/stats", s.supplierStats)

		managers := api.Group("/store-managers")
		managers.GET(":id/chats", s.storeManagerChats)
		managers.GET(":id/stats", s.storeManagerStats)

		products := api.Group("/products")
		products.GET("/status/:status", s.productsByStatus)
		products.POST("", s.createProduct)
		products.PATCH(":id/status", s.updateProductStatus)

		chats := api.Group("/chats")
		chats.GET(":id/messages", s.chatMessages)
		chats.POST(":id/messages", s.sendMessage)
		chats.POST(":id/read", s.markChatRead)
	}
}

type loginReq struct {
	UserID   string `json:"userId" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginReq true "Credentials"
// @Success 200 {object} domain.User
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /login [post]
func (s *Server) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId, password and role are required"})
		return
	}
	u, err := s.users.Login(c, req.UserID, req.Password, domain.Role(req.Role))
	if err != nil {
		s.respondError(c, err)
		return
	}
	// пароль не сериализуется (json:"-")
	c.JSON(http.StatusOK, u)
}

// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} domain.User
// @Failure 404 {object} map[string]string
// @Router /users/{id} [get]
func (s *Server) getUser(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	u, err := s.users.GetUser(c, id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary Get store by id
// @Tags stores
// @Produce json
// @Param id path int true "Store ID"
// @Success 200 {object} domain.Store
// @Failure 404 {object} map[string]string
// @Router /stores/{id} [get]
func (s *Server) getStore(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	store, err := s.users.GetStore(c, id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, store)
}

// @Summary List products of a store
// @Tags stores
// @Produce json
// @Param id path int true "Store ID"
// @Success 200 {array} domain.Product
// @Router /stores/{id}/products [get]
func (s *Server) storeProducts(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	list, err := s.products.ByStore(c, id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Sales of a store grouped by category
// @Tags stores
// @Produce json
// @Param id path int true "Store ID"
// @Success 200 {array} repository.CategorySales
// @Router /stores/{id}/sales/by-category [get]
func (s *Server) storeSalesByCategory(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	list, err := s.stats.SalesByCategory(c, id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Waste entries of a store
// @Tags stores
// @Produce json
// @Param id path int true "Store ID"
// @Success 200 {array} domain.Waste
// @Router /stores/{id}/waste [get]
func (s *Server) storeWaste(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	list, err := s.stats.WasteByStore(c, id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Stores a supplier delivers to
// @Tags suppliers
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {array} domain.Store
// @Router /suppliers/{id}/stores [get]
func (s *Server) supplierStores(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	list, err := s.users.StoresBySupplier(c, id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Chats of a supplier
// @Tags chats
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {array} service.SupplierChat
// @Router /suppliers/{id}/chats [get]
func (s *Server) supplierChats(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	list, err := s.chats.SupplierChats(c, id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Supplier dashboard stats
// @Tags stats
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} service.SupplierStats
// @Router /suppliers/{id}/stats [get]
func (s *Server) supplierStats(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	stats, err := s.stats.SupplierStats(c, id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Chats of a store manager
// @Tags chats
// @Produce json
// @Param id path int true "Store manager ID"
// @Success 200 {array} service.StoreManagerChat
// @Router /store-managers/{id}/chats [get]
func (s *Server) storeManagerChats(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	list, err := s.chats.StoreManagerChats(c, id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Store manager dashboard stats
// @Tags stats
// @Produce json
// @Param id path int true "Store ID"
// @Success 200 {object} service.StoreManagerStats
// @Router /store-managers/{id}/stats [get]
func (s *Server) storeManagerStats(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	stats, err := s.stats.StoreManagerStats(c, id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Products by status
// @Tags products
// @Produce json
// @Param status path string true "requested | in_transit | delayed"
// @Param supplierId query int false "Supplier filter"
// @Param storeId query int false "Store filter"
// @Success 200 {array} domain.Product
// @Failure 400 {object} map[string]string
// @Router /products/status/{status} [get]
func (s *Server) productsByStatus(c *gin.Context) {
	status := domain.ProductStatus(c.Param("status"))

	var supplierID, storeID *int64
	if v := c.Query("supplierId"); v != "" {
		id, err := parseID(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supplierId"})
			return
		}
		supplierID = &id
	}
	if v := c.Query("storeId"); v != "" {
		id, err := parseID(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid storeId"})
			return
		}
		storeID = &id
	}

	list, err := s.products.ByStatus(c, status, supplierID, storeID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type createProductReq struct {
	Name         string     `json:"name" binding:"required"`
	Category     string     `json:"category" binding:"required"`
	SupplierID   int64      `json:"supplierId" binding:"required"`
	Quantity     int64      `json:"quantity" binding:"required"`
	Status       string     `json:"status" binding:"required,oneof=requested in_transit delayed"`
	RequestDate  *time.Time `json:"requestDate"`
	DeliveryDate *time.Time `json:"deliveryDate"`
	StoreID      int64      `json:"storeId" binding:"required"`
}

// @Summary Submit a product request
// @Tags products
// @Accept json
// @Produce json
// @Param input body createProductReq true "Product request"
// @Success 201 {object} domain.Product
// @Failure 400 {object} map[string]string
// @Router /products [post]
func (s *Server) createProduct(c *gin.Context) {
	var req createProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := domain.Product{
		Name:         req.Name,
		Category:     req.Category,
		SupplierID:   req.SupplierID,
		Quantity:     req.Quantity,
		Status:       domain.ProductStatus(req.Status),
		DeliveryDate: req.DeliveryDate,
		StoreID:      req.StoreID,
	}
	if req.RequestDate != nil {
		p.RequestDate = *req.RequestDate
	}
	created, err := s.products.Request(c, p)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required,oneof=requested in_transit delayed"`
}

// @Summary Update product status
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param input body updateStatusReq true "New status"
// @Success 200 {object} domain.Product
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id}/status [patch]
func (s *Server) updateProductStatus(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	p, err := s.products.UpdateStatus(c, id, domain.ProductStatus(req.Status))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Messages of a chat
// @Tags chats
// @Produce json
// @Param id path int true "Chat ID"
// @Success 200 {array} domain.Message
// @Router /chats/{id}/messages [get]
func (s *Server) chatMessages(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	list, err := s.chats.Messages(c, id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type sendMessageReq struct {
	SenderID int64  `json:"senderId" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

// @Summary Send a message to a chat
// @Tags chats
// @Accept json
// @Produce json
// @Param id path int true "Chat ID"
// @Param input body sendMessageReq true "Message"
// @Success 201 {object} domain.Message
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /chats/{id}/messages [post]
func (s *Server) sendMessage(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "senderId and content are required"})
		return
	}
	// время сообщения проставляется на сервере в момент запроса
	msg, err := s.chats.Send(c, id, req.SenderID, req.Content)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

type markReadReq struct {
	UserID int64 `json:"userId" binding:"required"`
}

// @Summary Mark chat messages as read
// @Tags chats
// @Accept json
// @Produce json
// @Param id path int true "Chat ID"
// @Param input body markReadReq true "Reader"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /chats/{id}/read [post]
func (s *Server) markChatRead(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req markReadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}
	if err := s.chats.MarkRead(c, id, req.UserID); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "messages marked as read"})
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError переводит ошибку в статус; детали внутренних ошибок
// остаются в логе, клиент получает общее сообщение
func (s *Server) respondError(c *gin.Context, err error) {
	status := mapErrorToStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("internal error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
