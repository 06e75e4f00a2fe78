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

type OrderController struct {
	Orders repositories.OrderRepository
}

func NewOrderController(orders repositories.OrderRepository) *OrderController {
	return &OrderController{Orders: orders}
}

// GetAllOrders godoc
//
//	@Summary	List orders
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	utils.JSONResponse{data=[]dto.OrderDto}
//	@Router		/order [get]
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Orders.List(c.Request.Context())
	if err != nil {
		internalError(c, "list orders", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", dto.ToOrderDtos(orders))
}

// GetOrderByID godoc
//
//	@Summary	Get an order by ID
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"Order ID"
//	@Success	200	{object}	utils.JSONResponse{data=dto.OrderDto}
//	@Failure	404	{object}	utils.JSONResponse
//	@Router		/order/{id} [get]
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	order, err := oc.Orders.GetByID(c.Request.Context(), id)
	if err != nil {
		internalError(c, "get order", err)
		return
	}
	if order == nil {
		utils.RespondError(c, http.StatusNotFound, notFound("Order", id))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", dto.ToOrderDto(*order))
}

// CreateOrder godoc
//
//	@Summary		Create an order
//	@Description	The referenced customer must exist.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WriteOrderDto	true	"Order data"
//	@Success		201		{object}	utils.JSONResponse{data=dto.OrderDto}
//	@Failure		400		{object}	utils.JSONResponse
//	@Router			/order [post]
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req dto.WriteOrderDto
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order := req.ToModel()
	if err := oc.Orders.Add(c.Request.Context(), &order); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			utils.RespondError(c, http.StatusBadRequest, notFound("Customer", req.CustomerID))
			return
		}
		internalError(c, "create order", err)
		return
	}

	utils.InfoLogger.Printf("New order created (ID=%d) for CustomerID=%d", order.ID, order.CustomerID)

	c.Header("Location", fmt.Sprintf("%s/%d", c.FullPath(), order.ID))
	utils.RespondJSON(c, http.StatusCreated, "Order created", dto.ToOrderDto(order))
}

// UpdateOrder godoc
//
//	@Summary	Update an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Order ID"
//	@Param		request	body		dto.WriteOrderDto	true	"New values for every field"
//	@Success	200		{object}	utils.JSONResponse{data=dto.OrderDto}
//	@Failure	400		{object}	utils.JSONResponse
//	@Failure	404		{object}	utils.JSONResponse
//	@Router		/order/{id} [put]
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.WriteOrderDto
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ctx := c.Request.Context()
	order, err := oc.Orders.GetByID(ctx, id)
	if err != nil {
		internalError(c, "update order", err)
		return
	}
	if order == nil {
		utils.RespondError(c, http.StatusNotFound, notFound("Order", id))
		return
	}

	req.ApplyTo(order)
	if err := oc.Orders.Update(ctx, order); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCustomerNotFound):
			utils.RespondError(c, http.StatusBadRequest, notFound("Customer", req.CustomerID))
			return
		case errors.Is(err, repositories.ErrOrderNotFound):
			utils.RespondError(c, http.StatusNotFound, notFound("Order", id))
			return
		}
		internalError(c, "update order", err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order updated", dto.ToOrderDto(*order))
}

// DeleteOrder godoc
//
//	@Summary	Delete an order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"Order ID"
//	@Success	200	{object}	utils.JSONResponse
//	@Failure	404	{object}	utils.JSONResponse
//	@Router		/order/{id} [delete]
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	exists, err := oc.Orders.Exists(ctx, id)
	if err != nil {
		internalError(c, "delete order", err)
		return
	}
	if !exists {
		utils.RespondError(c, http.StatusNotFound, notFound("Order", id))
		return
	}

	if err := oc.Orders.Delete(ctx, id); err != nil {
		internalError(c, "delete order", err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"orderId": id})
}
