package httputil

import "github.com/gin-gonic/gin"

// TraceIDKey はトレースIDをgin.Contextに格納するキー。
const TraceIDKey = "trace_id"

// WriteError はProblemDetailをGinレスポンスとして書き込む。
// Instanceが未設定の場合はコンテキストのトレースIDを設定する。
func WriteError(c *gin.Context, problem *ProblemDetail) {
	fillInstance(c, problem)
	c.Header("Content-Type", ContentType)
	c.JSON(problem.Status, problem)
}

// AbortWithError はProblemDetailをGinレスポンスとして書き込み、リクエスト処理を中断する。
func AbortWithError(c *gin.Context, problem *ProblemDetail) {
	fillInstance(c, problem)
	c.Header("Content-Type", ContentType)
	c.AbortWithStatusJSON(problem.Status, problem)
}

func fillInstance(c *gin.Context, problem *ProblemDetail) {
	if problem.Instance == "" {
		problem.Instance = c.GetString(TraceIDKey)
	}
}
