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

type CustomerController struct {
	Customers repositories.CustomerRepository
	Products  repositories.ProductRepository
}

func NewCustomerController(customers repositories.CustomerRepository, products repositories.ProductRepository) *CustomerController {
	return &CustomerController{Customers: customers, Products: products}
}

// GetAllCustomers godoc
//
//	@Summary	List customers
//	@Tags		customers
//	@Produce	json
//	@Success	200	{object}	utils.JSONResponse{data=[]dto.CustomerDto}
//	@Failure	500	{object}	utils.JSONResponse
//	@Router		/customer [get]
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	customers, err := cc.Customers.List(c.Request.Context())
	if err != nil {
		internalError(c, "list customers", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of customers", dto.ToCustomerDtos(customers))
}

// GetCustomerByID godoc
//
//	@Summary	Get a customer by ID
//	@Tags		customers
//	@Produce	json
//	@Param		id	path		int	true	"Customer ID"
//	@Success	200	{object}	utils.JSONResponse{data=dto.CustomerDto}
//	@Failure	400	{object}	utils.JSONResponse
//	@Failure	404	{object}	utils.JSONResponse
//	@Router		/customer/{id} [get]
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	customer, err := cc.Customers.GetByID(c.Request.Context(), id)
	if err != nil {
		internalError(c, "get customer", err)
		return
	}
	if customer == nil {
		utils.RespondError(c, http.StatusNotFound, notFound("Customer", id))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer detail", dto.ToCustomerDto(*customer))
}

// CreateCustomer godoc
//
//	@Summary	Create a customer
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.WriteCustomerDto	true	"Customer data"
//	@Success	201		{object}	utils.JSONResponse{data=dto.CustomerDto}
//	@Failure	400		{object}	utils.JSONResponse
//	@Router		/customer [post]
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req dto.WriteCustomerDto
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer := req.ToModel()
	if err := cc.Customers.Add(c.Request.Context(), &customer); err != nil {
		internalError(c, "create customer", err)
		return
	}

	utils.InfoLogger.Printf("New customer created (ID=%d)", customer.ID)

	c.Header("Location", fmt.Sprintf("%s/%d", c.FullPath(), customer.ID))
	utils.RespondJSON(c, http.StatusCreated, "Customer created", dto.ToCustomerDto(customer))
}

// UpdateCustomer godoc
//
//	@Summary	Update a customer
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Customer ID"
//	@Param		request	body		dto.WriteCustomerDto	true	"New values for every field"
//	@Success	200		{object}	utils.JSONResponse{data=dto.CustomerDto}
//	@Failure	400		{object}	utils.JSONResponse
//	@Failure	404		{object}	utils.JSONResponse
//	@Router		/customer/{id} [put]
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.WriteCustomerDto
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ctx := c.Request.Context()
	customer, err := cc.Customers.GetByID(ctx, id)
	if err != nil {
		internalError(c, "update customer", err)
		return
	}
	if customer == nil {
		utils.RespondError(c, http.StatusNotFound, notFound("Customer", id))
		return
	}

	req.ApplyTo(customer)
	if err := cc.Customers.Update(ctx, customer); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			utils.RespondError(c, http.StatusNotFound, notFound("Customer", id))
			return
		}
		internalError(c, "update customer", err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer updated", dto.ToCustomerDto(*customer))
}

// DeleteCustomer godoc
//
//	@Summary		Delete a customer
//	@Description	Deletes the customer together with its orders and product links.
//	@Tags			customers
//	@Produce		json
//	@Param			id	path		int	true	"Customer ID"
//	@Success		200	{object}	utils.JSONResponse
//	@Failure		404	{object}	utils.JSONResponse
//	@Router			/customer/{id} [delete]
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	exists, err := cc.Customers.Exists(ctx, id)
	if err != nil {
		internalError(c, "delete customer", err)
		return
	}
	if !exists {
		utils.RespondError(c, http.StatusNotFound, notFound("Customer", id))
		return
	}

	if err := cc.Customers.Delete(ctx, id); err != nil {
		internalError(c, "delete customer", err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer deleted", gin.H{"id": id})
}

// GetOrdersForCustomer godoc
//
//	@Summary	List the orders of a customer
//	@Tags		customers
//	@Produce	json
//	@Param		id	path		int	true	"Customer ID"
//	@Success	200	{object}	utils.JSONResponse{data=[]dto.OrderDto}
//	@Failure	404	{object}	utils.JSONResponse
//	@Router		/customer/{id}/orders [get]
func (cc *CustomerController) GetOrdersForCustomer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	orders, found, err := cc.Customers.GetOrdersForCustomer(c.Request.Context(), id)
	if err != nil {
		internalError(c, "get orders for customer", err)
		return
	}
	if !found {
		utils.RespondError(c, http.StatusNotFound, notFound("Customer", id))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Orders of customer", dto.ToOrderDtos(orders))
}

// GetProductsForCustomer godoc
//
//	@Summary	List the products linked to a customer
//	@Tags		customers
//	@Produce	json
//	@Param		id	path		int	true	"Customer ID"
//	@Success	200	{object}	utils.JSONResponse{data=[]dto.ProductDto}
//	@Failure	404	{object}	utils.JSONResponse
//	@Router		/customer/{id}/products [get]
func (cc *CustomerController) GetProductsForCustomer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	products, found, err := cc.Customers.GetProductsForCustomer(c.Request.Context(), id)
	if err != nil {
		internalError(c, "get products for customer", err)
		return
	}
	if !found {
		utils.RespondError(c, http.StatusNotFound, notFound("Customer", id))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Products of customer", dto.ToProductDtos(products))
}

// AddProductToCustomer godoc
//
//	@Summary		Link a product to a customer
//	@Description	Linking a pair that is already linked succeeds and changes nothing.
//	@Tags			customers
//	@Produce		json
//	@Param			id			path		int	true	"Customer ID"
//	@Param			productId	path		int	true	"Product ID"
//	@Success		200			{object}	utils.JSONResponse
//	@Failure		404			{object}	utils.JSONResponse
//	@Router			/customer/{id}/products/{productId} [post]
func (cc *CustomerController) AddProductToCustomer(c *gin.Context) {
	customerID, productID, ok := cc.linkIDs(c)
	if !ok {
		return
	}

	err := cc.Customers.AddProductToCustomer(c.Request.Context(), customerID, productID)
	switch {
	case errors.Is(err, repositories.ErrCustomerNotFound):
		utils.RespondError(c, http.StatusNotFound, notFound("Customer", customerID))
		return
	case errors.Is(err, repositories.ErrProductNotFound):
		utils.RespondError(c, http.StatusNotFound, notFound("Product", productID))
		return
	case err != nil:
		internalError(c, "add product to customer", err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product added to customer",
		gin.H{"customerId": customerID, "productId": productID})
}

// RemoveProductFromCustomer godoc
//
//	@Summary	Unlink a product from a customer
//	@Tags		customers
//	@Produce	json
//	@Param		id			path		int	true	"Customer ID"
//	@Param		productId	path		int	true	"Product ID"
//	@Success	200			{object}	utils.JSONResponse
//	@Failure	404			{object}	utils.JSONResponse
//	@Router		/customer/{id}/products/{productId} [delete]
func (cc *CustomerController) RemoveProductFromCustomer(c *gin.Context) {
	customerID, productID, ok := cc.linkIDs(c)
	if !ok {
		return
	}

	if err := cc.Customers.RemoveProductFromCustomer(c.Request.Context(), customerID, productID); err != nil {
		internalError(c, "remove product from customer", err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product removed from customer",
		gin.H{"customerId": customerID, "productId": productID})
}

// linkIDs parses both path ids and checks that the customer and the product
// exist, answering 400 or 404 otherwise.
func (cc *CustomerController) linkIDs(c *gin.Context) (uint, uint, bool) {
	customerID, ok := paramID(c, "id")
	if !ok {
		return 0, 0, false
	}
	productID, ok := paramID(c, "productId")
	if !ok {
		return 0, 0, false
	}

	ctx := c.Request.Context()
	exists, err := cc.Customers.Exists(ctx, customerID)
	if err != nil {
		internalError(c, "check customer", err)
		return 0, 0, false
	}
	if !exists {
		utils.RespondError(c, http.StatusNotFound, notFound("Customer", customerID))
		return 0, 0, false
	}

	exists, err = cc.Products.Exists(ctx, productID)
	if err != nil {
		internalError(c, "check product", err)
		return 0, 0, false
	}
	if !exists {
		utils.RespondError(c, http.StatusNotFound, notFound("Product", productID))
		return 0, 0, false
	}
	return customerID, productID, true
}
