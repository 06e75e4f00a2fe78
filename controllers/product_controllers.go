package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/storefront-api/dto"
	"github.com/yeremiapane/storefront-api/repositories"
	"github.com/yeremiapane/storefront-api/utils"
)

type ProductController struct {
	Products  repositories.ProductRepository
	Customers repositories.CustomerRepository
}

func NewProductController(products repositories.ProductRepository, customers repositories.CustomerRepository) *ProductController {
	return &ProductController{Products: products, Customers: customers}
}

// GetAllProducts godoc
//
//	@Summary	List products
//	@Tags		products
//	@Produce	json
//	@Success	200	{object}	utils.JSONResponse{data=[]dto.ProductDto}
//	@Router		/product [get]
func (pc *ProductController) GetAllProducts(c *gin.Context) {
	products, err := pc.Products.List(c.Request.Context())
	if err != nil {
		internalError(c, "list products", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of products", dto.ToProductDtos(products))
}

// GetProductByID godoc
//
//	@Summary	Get a product by ID
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"Product ID"
//	@Success	200	{object}	utils.JSONResponse{data=dto.ProductDto}
//	@Failure	404	{object}	utils.JSONResponse
//	@Router		/product/{id} [get]
func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	product, err := pc.Products.GetByID(c.Request.Context(), id)
	if err != nil {
		internalError(c, "get product", err)
		return
	}
	if product == nil {
		utils.RespondError(c, http.StatusNotFound, notFound("Product", id))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product detail", dto.ToProductDto(*product))
}

// CreateProduct godoc
//
//	@Summary	Create a product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.WriteProductDto	true	"Product data"
//	@Success	201		{object}	utils.JSONResponse{data=dto.ProductDto}
//	@Failure	400		{object}	utils.JSONResponse
//	@Router		/product [post]
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req dto.WriteProductDto
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	product := req.ToModel()
	if err := pc.Products.Add(c.Request.Context(), &product); err != nil {
		internalError(c, "create product", err)
		return
	}

	utils.InfoLogger.Printf("New product created (ID=%d)", product.ID)

	c.Header("Location", fmt.Sprintf("%s/%d", c.FullPath(), product.ID))
	utils.RespondJSON(c, http.StatusCreated, "Product created", dto.ToProductDto(product))
}

// UpdateProduct godoc
//
//	@Summary	Update a product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Product ID"
//	@Param		request	body		dto.WriteProductDto	true	"New values for every field"
//	@Success	200		{object}	utils.JSONResponse{data=dto.ProductDto}
//	@Failure	400		{object}	utils.JSONResponse
//	@Failure	404		{object}	utils.JSONResponse
//	@Router		/product/{id} [put]
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.WriteProductDto
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ctx := c.Request.Context()
	product, err := pc.Products.GetByID(ctx, id)
	if err != nil {
		internalError(c, "update product", err)
		return
	}
	if product == nil {
		utils.RespondError(c, http.StatusNotFound, notFound("Product", id))
		return
	}

	req.ApplyTo(product)
	if err := pc.Products.Update(ctx, product); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			utils.RespondError(c, http.StatusNotFound, notFound("Product", id))
			return
		}
		internalError(c, "update product", err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product updated", dto.ToProductDto(*product))
}

// DeleteProduct godoc
//
//	@Summary		Delete a product
//	@Description	Deletes the product and its customer links.
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"Product ID"
//	@Success		200	{object}	utils.JSONResponse
//	@Failure		404	{object}	utils.JSONResponse
//	@Router			/product/{id} [delete]
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	exists, err := pc.Products.Exists(ctx, id)
	if err != nil {
		internalError(c, "delete product", err)
		return
	}
	if !exists {
		utils.RespondError(c, http.StatusNotFound, notFound("Product", id))
		return
	}

	if err := pc.Products.Delete(ctx, id); err != nil {
		internalError(c, "delete product", err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product deleted", gin.H{"productId": id})
}

// GetCustomersForProduct godoc
//
//	@Summary	List the customers linked to a product
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"Product ID"
//	@Success	200	{object}	utils.JSONResponse{data=[]dto.CustomerDto}
//	@Failure	404	{object}	utils.JSONResponse
//	@Router		/product/{id}/customers [get]
func (pc *ProductController) GetCustomersForProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	customers, found, err := pc.Products.GetCustomersForProduct(c.Request.Context(), id)
	if err != nil {
		internalError(c, "get customers for product", err)
		return
	}
	if !found {
		utils.RespondError(c, http.StatusNotFound, notFound("Product", id))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customers of product", dto.ToCustomerDtos(customers))
}

// AddCustomerToProduct godoc
//
//	@Summary	Link a customer to a product
//	@Tags		products
//	@Produce	json
//	@Param		id			path		int	true	"Product ID"
//	@Param		customerId	path		int	true	"Customer ID"
//	@Success	200			{object}	utils.JSONResponse
//	@Failure	404			{object}	utils.JSONResponse
//	@Router		/product/{id}/customers/{customerId} [post]
func (pc *ProductController) AddCustomerToProduct(c *gin.Context) {
	productID, customerID, ok := pc.linkIDs(c)
	if !ok {
		return
	}

	err := pc.Products.AddCustomerToProduct(c.Request.Context(), productID, customerID)
	switch {
	case errors.Is(err, repositories.ErrProductNotFound):
		utils.RespondError(c, http.StatusNotFound, notFound("Product", productID))
		return
	case errors.Is(err, repositories.ErrCustomerNotFound):
		utils.RespondError(c, http.StatusNotFound, notFound("Customer", customerID))
		return
	case err != nil:
		internalError(c, "add customer to product", err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer added to product",
		gin.H{"productId": productID, "customerId": customerID})
}

// RemoveCustomerFromProduct godoc
//
//	@Summary	Unlink a customer from a product
//	@Tags		products
//	@Produce	json
//	@Param		id			path		int	true	"Product ID"
//	@Param		customerId	path		int	true	"Customer ID"
//	@Success	200			{object}	utils.JSONResponse
//	@Failure	404			{object}	utils.JSONResponse
//	@Router		/product/{id}/customers/{customerId} [delete]
func (pc *ProductController) RemoveCustomerFromProduct(c *gin.Context) {
	productID, customerID, ok := pc.linkIDs(c)
	if !ok {
		return
	}

	if err := pc.Products.RemoveCustomerFromProduct(c.Request.Context(), productID, customerID); err != nil {
		internalError(c, "remove customer from product", err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer removed from product",
		gin.H{"productId": productID, "customerId": customerID})
}

func (pc *ProductController) linkIDs(c *gin.Context) (uint, uint, bool) {
	productID, ok := paramID(c, "id")
	if !ok {
		return 0, 0, false
	}
	customerID, ok := paramID(c, "customerId")
	if !ok {
		return 0, 0, false
	}

	ctx := c.Request.Context()
	exists, err := pc.Products.Exists(ctx, productID)
	if err != nil {
		internalError(c, "check product", err)
		return 0, 0, false
	}
	if !exists {
		utils.RespondError(c, http.StatusNotFound, notFound("Product", productID))
		return 0, 0, false
	}

	exists, err = pc.Customers.Exists(ctx, customerID)
	if err != nil {
		internalError(c, "check customer", err)
		return 0, 0, false
	}
	if !exists {
		utils.RespondError(c, http.StatusNotFound, notFound("Customer", customerID))
		return 0, 0, false
	}
	return productID, customerID, true
}
