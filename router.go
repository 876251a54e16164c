package main

import (
	handler "paper-grade/biz/adaptor/controller"
	"paper-grade/biz/adaptor/controller/assistant"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizedRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", handler.Ping)

	apiV1 := r.Group("/api/v1")
	{
		auth := apiV1.Group("/auth")
		{
			auth.POST("/sign_up", assistant.SignUp)
			auth.POST("/sign_in", assistant.SignIn)
			auth.GET("/user_info", assistant.GetUserInfo)
		}

		students := apiV1.Group("/students")
		{
			students.POST("/create", assistant.CreateStudent)
			students.GET("/list", assistant.ListStudents)
			students.GET("/get", assistant.GetStudent)
			students.POST("/update", assistant.UpdateStudent)
			students.POST("/delete", assistant.DeleteStudent)
		}

		tests := apiV1.Group("/tests")
		{
			tests.POST("/create", assistant.CreateTest)
			tests.GET("/list", assistant.ListTests)
			tests.GET("/get", assistant.GetTest)
			tests.POST("/update", assistant.UpdateTest)
			tests.POST("/delete", assistant.DeleteTest)
			tests.POST("/extract_rubric", assistant.ExtractRubric)
			tests.POST("/extract_questions", assistant.ExtractQuestions)
			tests.GET("/questions", assistant.ListQuestions)
		}

		files := apiV1.Group("/files")
		{
			files.POST("/upload", assistant.UploadFile)
			files.GET("/download", assistant.DownloadFile)
		}

		submissions := apiV1.Group("/submissions")
		{
			submissions.POST("/create", assistant.CreateSubmission)
			submissions.GET("/list_by_test", assistant.ListSubmissionsByTest)
			submissions.GET("/list_by_student", assistant.ListSubmissionsByStudent)
			submissions.GET("/get", assistant.GetSubmission)
			submissions.POST("/delete", assistant.DeleteSubmission)
			submissions.POST("/retry_grading", assistant.RetryGrading)
		}

		reports := apiV1.Group("/reports")
		{
			reports.POST("/individual", assistant.GenerateReport)
			reports.POST("/class", assistant.GenerateClassReport)
		}

		settings := apiV1.Group("/settings")
		{
			settings.GET("/prompts", assistant.GetPrompts)
			settings.POST("/prompts/update", assistant.UpdatePrompt)
		}

		maintenance := apiV1.Group("/maintenance")
		{
			maintenance.POST("/cleanup", assistant.CleanupFiles)
			maintenance.GET("/storage_stats", assistant.StorageStats)
			maintenance.GET("/health", assistant.Health)
		}
	}
}
