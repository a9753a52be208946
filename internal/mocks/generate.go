package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name FootballDataProvider --dir ../usecase --output usecase --outpkg usecasemock --filename football_data_provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name NewsProvider --dir ../usecase --output usecase --outpkg usecasemock --filename news_provider_mock.go
