package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/delis/schoolhub/internal/app/controllers"
	"github.com/delis/schoolhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	cityController *controllers.CityController,
	specialityController *controllers.SpecialityController,
	userController *controllers.UserController,
	studentController *controllers.StudentController,
	teacherController *controllers.TeacherController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// Reference data reads stay public
	cities := v1.Group("/cities")
	{
		cities.GET("", cityController.GetAllCities)
		cities.GET("/:id", cityController.GetCityByID)
	}

	specialities := v1.Group("/specialities")
	{
		specialities.GET("", specialityController.GetAllSpecialities)
		specialities.GET("/:id", specialityController.GetSpecialityByID)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		citiesProtected := authenticated.Group("/cities")
		{
			citiesProtected.POST("", cityController.CreateCity)
			citiesProtected.PUT("/:id", cityController.UpdateCity)
			citiesProtected.DELETE("/:id", cityController.DeleteCity)
		}

		specialitiesProtected := authenticated.Group("/specialities")
		{
			specialitiesProtected.POST("", specialityController.CreateSpeciality)
			specialitiesProtected.PUT("/:id", specialityController.UpdateSpeciality)
			specialitiesProtected.DELETE("/:id", specialityController.DeleteSpeciality)
		}

		users := authenticated.Group("/users")
		{
			users.GET("", userController.GetUsers)
			users.GET("/:id", userController.GetUserByID)
			users.POST("", userController.CreateUser)
			users.PUT("/:id", userController.UpdateUser)
			users.DELETE("/:id", userController.DeleteUser)
		}

		students := authenticated.Group("/students")
		{
			students.GET("", studentController.GetStudents)
			students.GET("/:id", studentController.GetStudentByID)
			students.POST("", studentController.CreateStudent)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)
		}

		teachers := authenticated.Group("/teachers")
		{
			teachers.GET("", teacherController.GetTeachers)
			teachers.GET("/:id", teacherController.GetTeacherByID)
			teachers.POST("", teacherController.CreateTeacher)
			teachers.PUT("/:id", teacherController.UpdateTeacher)
			teachers.DELETE("/:id", teacherController.DeleteTeacher)
		}
	}
}
