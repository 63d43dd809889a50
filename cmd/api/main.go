package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/datakeep/communities-service/internal/api"
)

func main() {
	lambda.Start(api.Handler())
}
