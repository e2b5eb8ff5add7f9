package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"dental-tracker-api/internal/config"
	"dental-tracker-api/internal/container"
)

var chiLambda *chiadapter.ChiLambda

func init() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		config.Logger().Fatalf("failed to load config: %v", err)
	}
	config.Init(cfg)

	c := container.New(cfg)
	chiLambda = chiadapter.New(c.Router())
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
