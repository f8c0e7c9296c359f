package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"chakula/internal/config"
	"chakula/internal/middleware"
	"chakula/internal/models"
)

type cartItemInput struct {
	MenuItemID uint            `json:"menu_item_id"`
	ItemName   string          `json:"item_name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Comment    string          `json:"comment"`
}

// valid reports whether the cart line carries everything a snapshot needs.
func (i cartItemInput) valid() bool {
	return i.MenuItemID != 0 && i.Quantity > 0 && i.ItemName != "" && i.Price.IsPositive()
}

type createOrderInput struct {
	RestaurantID      uint            `json:"restaurant_id" binding:"required"`
	DeliveryAddressID uint            `json:"delivery_address_id" binding:"required"`
	Price             decimal.Decimal `json:"price" binding:"required"`
	Discount          decimal.Decimal `json:"discount"`
	Comment           string          `json:"comment"`
	Cart              []cartItemInput `json:"cart" binding:"required,min=1"`
}

// CreateOrder inserts the order row and one line item per valid cart entry
// in a single transaction. Line items carry a point-in-time copy of the menu
// item's name and price, so later catalog edits never touch placed orders.
// Malformed cart lines are dropped, not fatal; a cart with no usable line is
// rejected outright.
func CreateOrder(c *gin.Context) {
	var input createOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	valid := make([]cartItemInput, 0, len(input.Cart))
	for _, line := range input.Cart {
		if !line.valid() {
			logrus.WithFields(logrus.Fields{
				"menu_item_id": line.MenuItemID,
				"quantity":     line.Quantity,
			}).Warn("skipping invalid cart item")
			continue
		}
		valid = append(valid, line)
	}
	if len(valid) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty or invalid."})
		return
	}

	order := models.Order{
		UserID:            middleware.UserID(c),
		RestaurantID:      input.RestaurantID,
		DeliveryAddressID: input.DeliveryAddressID,
		Price:             input.Price,
		Discount:          input.Discount,
		FinalPrice:        input.Price.Sub(input.Discount),
		Comment:           input.Comment,
		Status:            models.OrderPending,
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start transaction"})
		return
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create order: " + err.Error()})
		return
	}

	items := make([]models.OrderMenuItem, 0, len(valid))
	for _, line := range valid {
		item := models.OrderMenuItem{
			OrderID:    order.ID,
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
			ItemName:   line.ItemName,
			Price:      line.Price,
			Comment:    line.Comment,
		}
		if err := tx.Create(&item).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create order item: " + err.Error()})
			return
		}
		items = append(items, item)
	}

	if err := appendStatusEvent(tx, order.ID, models.OrderPending); err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record order status: " + err.Error()})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not commit transaction: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully.",
		"order":   order,
		"items":   items,
	})
}

// appendStatusEvent records one append-only status trail row inside tx.
func appendStatusEvent(tx *gorm.DB, orderID uint, statusName string) error {
	catalog := models.StatusCatalog{Name: statusName}
	if err := tx.Where("name = ?", statusName).FirstOrCreate(&catalog).Error; err != nil {
		return err
	}
	return tx.Create(&models.OrderStatus{OrderID: orderID, StatusCatalogID: catalog.ID}).Error
}

// ListOrders returns all orders with their relations.
func ListOrders(c *gin.Context) {
	var orders []models.Order
	err := config.DB.
		Preload("Items").
		Preload("Restaurant").
		Preload("User").
		Preload("DeliveryAddress.City.State").
		Preload("Driver").
		Preload("Statuses.StatusCatalog").
		Preload("Comments").
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": orders})
}

// GetOrder returns a single order with its relations.
func GetOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var order models.Order
	if err := config.DB.
		Preload("Items.MenuItem").
		Preload("Restaurant").
		Preload("User").
		Preload("DeliveryAddress.City.State").
		Preload("Driver").
		Preload("Statuses.StatusCatalog").
		Preload("Comments").
		First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type updateOrderInput struct {
	Status             *string          `json:"status"`
	DriverID           *uint            `json:"driver_id"`
	ActualDeliveryTime *time.Time       `json:"actual_delivery_time"`
	Comment            *string          `json:"comment"`
	Price              *decimal.Decimal `json:"price"`
	Discount           *decimal.Decimal `json:"discount"`
	FinalPrice         *decimal.Decimal `json:"final_price"`
}

// UpdateOrder applies a partial update. Price fields are taken as supplied;
// final_price is not recomputed here. A status change also appends a status
// trail event in the same transaction.
func UpdateOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var order models.Order
	if err := config.DB.First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var input updateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	statusChanged := false
	if input.Status != nil {
		if !models.ValidOrderStatus(*input.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status: " + *input.Status})
			return
		}
		statusChanged = *input.Status != order.Status
		order.Status = *input.Status
	}
	if input.DriverID != nil {
		order.DriverID = input.DriverID
	}
	if input.ActualDeliveryTime != nil {
		order.ActualDeliveryTime = input.ActualDeliveryTime
	}
	if input.Comment != nil {
		order.Comment = *input.Comment
	}
	if input.Price != nil {
		order.Price = *input.Price
	}
	if input.Discount != nil {
		order.Discount = *input.Discount
	}
	if input.FinalPrice != nil {
		order.FinalPrice = *input.FinalPrice
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start transaction"})
		return
	}
	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update order: " + err.Error()})
		return
	}
	if statusChanged {
		if err := appendStatusEvent(tx, order.ID, order.Status); err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record order status: " + err.Error()})
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not commit transaction: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order updated successfully.", "order": order})
}

// DeleteOrder removes the order with its line items, comments and status
// trail in dependency order, all in one transaction.
func DeleteOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var order models.Order
	if dbErr := config.DB.First(&order, id).Error; dbErr != nil {
		if errors.Is(dbErr, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + dbErr.Error()})
		}
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start transaction"})
		return
	}
	if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderMenuItem{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete order items: " + err.Error()})
		return
	}
	if err := tx.Where("order_id = ?", order.ID).Delete(&models.Comment{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete order comments: " + err.Error()})
		return
	}
	if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderStatus{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete order status trail: " + err.Error()})
		return
	}
	if err := tx.Delete(&order).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete order: " + err.Error()})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not commit transaction: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully."})
}

// ListOrderStatus returns the order's status trail oldest first.
func ListOrderStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var order models.Order
	if err := config.DB.First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var trail []models.OrderStatus
	if err := config.DB.
		Preload("StatusCatalog").
		Where("order_id = ?", order.ID).
		Order("created_at asc").
		Find(&trail).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch status trail"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": trail})
}

// AddOrderStatus appends one event to the order's status trail. The trail is
// never mutated or compacted.
func AddOrderStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var order models.Order
	if err := config.DB.First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var body struct {
		StatusCatalogID uint `json:"status_catalog_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var catalog models.StatusCatalog
	if err := config.DB.First(&catalog, body.StatusCatalogID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Status catalog entry not found"})
		return
	}

	event := models.OrderStatus{OrderID: order.ID, StatusCatalogID: catalog.ID}
	if err := config.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record order status: " + err.Error()})
		return
	}
	event.StatusCatalog = catalog

	c.JSON(http.StatusCreated, gin.H{"status": event})
}

// parseID pulls the numeric :id param, replying 400 itself on garbage.
func parseID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format."})
		return 0, err
	}
	return uint(id), nil
}
