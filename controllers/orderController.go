package controllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/XidanAbds29/huehouse-api/initializers"
	"github.com/XidanAbds29/huehouse-api/middlewares"
	"github.com/XidanAbds29/huehouse-api/models"
	"github.com/XidanAbds29/huehouse-api/services"
	"github.com/XidanAbds29/huehouse-api/utils"
)

var (
	checkout     *services.CheckoutService
	checkoutOnce sync.Once
)

// checkoutService builds the singleton on first use. Handlers run on
// concurrent goroutines, so construction goes through sync.Once.
func checkoutService() *services.CheckoutService {
	checkoutOnce.Do(func() {
		cfg := initializers.Cfg

		var tracker services.PurchaseTracker
		if cfg.MetaPixelID != "" && cfg.MetaAccessToken != "" {
			tracker = services.NewPixelTracker(cfg.MetaPixelID, cfg.MetaAccessToken)
		}

		checkout = services.NewCheckoutService(
			&services.GormOrderStore{DB: initializers.DB},
			&services.GormProfileStore{DB: initializers.DB},
			services.NewSteadfastClient(cfg.SteadfastBaseURL, cfg.SteadfastAPIKey, cfg.SteadfastSecretKey),
			&services.EmailNotifier{},
			tracker,
			cfg.SettlementDelay,
			cfg.WhatsAppNumber,
		)
	})
	return checkout
}

// Checkout places an order from the submitted cart snapshot. The payment
// reference fields are required but never verified or stored.
func Checkout(ctx *gin.Context) {
	var body struct {
		Name        string            `json:"name" binding:"required"`
		Phone       string            `json:"phone" binding:"required"`
		Address     string            `json:"address" binding:"required"`
		BkashNumber string            `json:"bkashNumber" binding:"required"`
		TrxID       string            `json:"trxId" binding:"required"`
		Items       []models.CartItem `json:"items" binding:"required,min=1,dive"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := services.CheckoutInput{
		Name:        body.Name,
		Phone:       body.Phone,
		Address:     body.Address,
		BkashNumber: body.BkashNumber,
		TrxID:       body.TrxID,
		Items:       body.Items,
	}

	userID, authenticated := middlewares.CurrentUserID(ctx)
	if authenticated {
		input.UserID = &userID
	}

	result, err := checkoutService().PlaceOrder(input)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			sendErrorResponse(ctx, http.StatusBadRequest, "Cart is empty")
			return
		}
		log.Println("Order failed:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to place order. Please try again.")
		return
	}

	// The client clears its own snapshot; the server-side copy follows.
	if authenticated {
		if cart, cartErr := getOrCreateCart(userID); cartErr == nil {
			if saveErr := saveCartItems(&cart, nil); saveErr != nil {
				log.Println("Failed to clear cart after checkout:", saveErr)
			}
		}
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":     "Order placed successfully.",
		"order":       result.Order,
		"whatsappUrl": result.WhatsAppURL,
	})
}

func GetMyOrders(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var orders []models.Order
	result := initializers.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

// GetOrderInvoice returns the invoice document data for client-side
// rendering and download.
func GetOrderInvoice(ctx *gin.Context) {
	orderNumber := ctx.Param("orderNumber")

	var order models.Order
	result := initializers.DB.Where("order_number = ?", orderNumber).First(&order)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println(result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order.")
		}
		return
	}

	invoice, err := utils.BuildInvoice(&order)
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to build invoice.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"invoice": invoice})
}

func GetOrders(ctx *gin.Context) {
	var orders []models.Order

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	query := initializers.DB.Model(&models.Order{})
	if search := ctx.Query("search"); search != "" {
		query = query.Where("order_number LIKE ?", search+"%")
	}

	result := query.Order("created_at " + sortOrder).Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
		return
	}

	var count int64
	countQuery := initializers.DB.Model(&models.Order{})
	if search := ctx.Query("search"); search != "" {
		countQuery = countQuery.Where("order_number LIKE ?", search+"%")
	}
	countQuery.Count(&count)

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

// UpdateOrderStatus sets the fulfillment status. Any status is settable at
// any time, there is no transition graph.
func UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	if result := initializers.DB.Model(&models.Order{}).
		Where("id = ?", orderId).
		Update("status", orderStatusData.Status); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to update order status")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully."})
}

// DeleteOrder soft-marks the order; rows are never removed.
func DeleteOrder(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id.")
		return
	}

	if result := initializers.DB.Model(&models.Order{}).
		Where("id = ?", orderId).
		Update("status", models.OrderStatusDeleted); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to delete order.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order marked as deleted."})
}

// RetryCourierSync re-invokes the courier booking with the same order
// fields. This is the only recovery path for failed or never-sent bookings.
func RetryCourierSync(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var order models.Order
	result := initializers.DB.Where("id = ?", orderId).First(&order)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println(result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order.")
		}
		return
	}

	if err := checkoutService().SyncCourier(&order); err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{
			"message": "Courier booking failed",
			"error":   err.Error(),
		})
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":       "Courier synced successfully.",
		"courierStatus": order.CourierStatus,
		"trackingId":    order.TrackingId,
	})
}
