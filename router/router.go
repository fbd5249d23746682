package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nextgenfoodcourt/foodcourt-app/controllers"
	"github.com/nextgenfoodcourt/foodcourt-app/middlewares"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	cuisineCtrl := controllers.NewCuisineController(db)
	outletCtrl := controllers.NewOutletController(db)
	menuItemCtrl := controllers.NewMenuItemController(db)
	orderCtrl := controllers.NewOrderController(db)
	orderItemCtrl := controllers.NewOrderItemController(db)
	tableCtrl := controllers.NewTableController(db)
	reservationCtrl := controllers.NewReservationController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to NextGen Food Court APIs"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "message": "Backend is running"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// CUISINES
	r.GET("/cuisines", cuisineCtrl.GetAllCuisines)
	r.POST("/cuisines", cuisineCtrl.CreateCuisine)
	r.GET("/cuisines/:id", cuisineCtrl.GetCuisineByID)
	r.PATCH("/cuisines/:id", cuisineCtrl.UpdateCuisine)
	r.DELETE("/cuisines/:id", cuisineCtrl.DeleteCuisine)

	// OUTLETS (reads are public, mutations are owner-only)
	r.GET("/outlets", outletCtrl.GetAllOutlets)
	r.GET("/outlets/:id", outletCtrl.GetOutletByID)

	outletAdmin := r.Group("/outlets")
	outletAdmin.Use(middlewares.AuthMiddleware(), middlewares.RequireRoles("owner"))
	{
		outletAdmin.POST("", outletCtrl.CreateOutlet)
		outletAdmin.PATCH("/:id", outletCtrl.UpdateOutlet)
		outletAdmin.DELETE("/:id", outletCtrl.DeleteOutlet)
	}

	// MENU ITEMS (?outlet_id= filter on the list)
	r.GET("/menu-items", menuItemCtrl.GetAllMenuItems)
	r.POST("/menu-items", menuItemCtrl.CreateMenuItem)
	r.GET("/menu-items/:id", menuItemCtrl.GetMenuItemByID)
	r.PATCH("/menu-items/:id", menuItemCtrl.UpdateMenuItem)
	r.DELETE("/menu-items/:id", menuItemCtrl.DeleteMenuItem)

	// ORDERS
	r.GET("/orders", orderCtrl.GetAllOrders)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/:id", orderCtrl.GetOrderByID)
	r.PATCH("/orders/:id", orderCtrl.UpdateOrder)
	r.DELETE("/orders/:id", orderCtrl.DeleteOrder)

	// ORDER ITEMS
	r.GET("/order-items", orderItemCtrl.GetAllOrderItems)
	r.POST("/order-items", orderItemCtrl.CreateOrderItem)
	r.GET("/order-items/:id", orderItemCtrl.GetOrderItemByID)
	r.PATCH("/order-items/:id", orderItemCtrl.UpdateOrderItem)
	r.DELETE("/order-items/:id", orderItemCtrl.DeleteOrderItem)

	// TABLES (availability flag is never patchable here)
	r.GET("/tables", tableCtrl.GetAllTables)
	r.POST("/tables", tableCtrl.CreateTable)
	r.GET("/tables/:id", tableCtrl.GetTableByID)
	r.PATCH("/tables/:id", tableCtrl.UpdateTable)
	r.DELETE("/tables/:id", tableCtrl.DeleteTable)

	// RESERVATIONS
	r.GET("/reservations", reservationCtrl.GetAllReservations)
	r.POST("/reservations", reservationCtrl.CreateReservation)
	r.GET("/reservations/:id", reservationCtrl.GetReservationByID)
	r.PATCH("/reservations/:id", reservationCtrl.UpdateReservation)
	r.DELETE("/reservations/:id", reservationCtrl.DeleteReservation)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/logout", userCtrl.Logout)
		auth.GET("/check-auth", userCtrl.CheckAuth)

		auth.GET("/users", userCtrl.GetAllUsers)
		auth.GET("/users/:id", userCtrl.GetUserByID)
		auth.PATCH("/users/:id", userCtrl.UpdateUser)
		auth.DELETE("/users/:id", userCtrl.DeleteUser)
	}

	return r
}
