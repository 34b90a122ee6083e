// Marketplace HTTP handlers.
//
// This file exposes the simulated marketplace actions:
//   - POST /products               (create a product listing)
//   - POST /products/:id/purchase  (buy a product)
//
// Listing creation takes a string-keyed field bag; purchase takes the
// product id from the path and the quantity from the body, both coerced to
// integers with a zero fallback.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agrilink/agrifinance-backend/internal/services"
	"github.com/agrilink/agrifinance-backend/internal/utils"
)

// CreateListingRequest is the sell-products form payload.
type CreateListingRequest struct {
	Product     string `form:"product"     json:"product"     example:"Maize"`
	Quantity    string `form:"quantity"    json:"quantity"    example:"200"`
	Unit        string `form:"unit"        json:"unit"        example:"kg"`
	Price       string `form:"price"       json:"price"       example:"350"`
	Location    string `form:"location"    json:"location"    example:"Lilongwe"`
	Description string `form:"description" json:"description" example:"Freshly harvested"`
}

// CreateListingResponse confirms a created listing.
type CreateListingResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Product listing created successfully"`
	ID      int    `json:"id"      example:"4821"`
}

// BuyProductRequest carries the purchase quantity.
type BuyProductRequest struct {
	Quantity int `form:"quantity" json:"quantity" example:"10"`
}

// BuyProductResponse confirms a simulated purchase.
type BuyProductResponse struct {
	Success       bool   `json:"success"       example:"true"`
	Message       string `json:"message"       example:"Product purchased successfully"`
	TransactionID string `json:"transactionId" example:"T-93"`
}

// CreateProductListing godoc
// @ID          createProductListing
// @Summary     Create a product listing
// @Description Simulates publishing a listing and returns its listing number.
// @Tags        Marketplace
// @Accept      json
// @Accept      x-www-form-urlencoded
// @Produce     json
//
// @Param       body  body  handlers.CreateListingRequest  true  "Listing payload"
//
// @Success     200  {object} handlers.CreateListingResponse
// @Failure     500  {object} handlers.OperationResult "Operation failed"
// @Router      /products [post]
func (h *Handlers) CreateProductListing(c *gin.Context) {
	var req CreateListingRequest
	_ = c.ShouldBind(&req)

	receipt, err := h.marketSvc.CreateListing(c.Request.Context(), services.ListingRequest{
		Product:     req.Product,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Price:       req.Price,
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		failOp(c, "Failed to create product listing", err)
		return
	}

	ok(c, http.StatusOK, CreateListingResponse{
		Success: true,
		Message: "Product listing created successfully",
		ID:      receipt.ID,
	})
}

// BuyProduct godoc
// @ID          buyProduct
// @Summary     Buy a product
// @Description Simulates purchasing a quantity of a product and returns the transaction reference.
// @Tags        Marketplace
// @Accept      json
// @Accept      x-www-form-urlencoded
// @Produce     json
//
// @Param       id    path  int  true  "Product ID"  example(42)
// @Param       body  body  handlers.BuyProductRequest  true  "Purchase payload"
//
// @Success     200  {object} handlers.BuyProductResponse
// @Failure     500  {object} handlers.OperationResult "Operation failed"
// @Router      /products/{id}/purchase [post]
func (h *Handlers) BuyProduct(c *gin.Context) {
	productID := utils.AtoiDefault(c.Param("id"), 0)

	var req BuyProductRequest
	_ = c.ShouldBind(&req)

	receipt, err := h.marketSvc.Purchase(c.Request.Context(), productID, req.Quantity)
	if err != nil {
		failOp(c, "Failed to purchase product", err)
		return
	}

	ok(c, http.StatusOK, BuyProductResponse{
		Success:       true,
		Message:       "Product purchased successfully",
		TransactionID: receipt.TransactionID,
	})
}
