package mealrpc

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// MealServiceName is the fully-qualified name of the meal service.
const MealServiceName = "mealtracker.v1.MealService"

// Procedure paths, relative to the server root.
const (
	MealServiceListMealsProcedure   = "/mealtracker.v1.MealService/ListMeals"
	MealServiceGetMealProcedure     = "/mealtracker.v1.MealService/GetMeal"
	MealServiceAddMealProcedure     = "/mealtracker.v1.MealService/AddMeal"
	MealServiceUpdateMealProcedure  = "/mealtracker.v1.MealService/UpdateMeal"
	MealServiceDeleteMealProcedure  = "/mealtracker.v1.MealService/DeleteMeal"
	MealServiceRateMealProcedure    = "/mealtracker.v1.MealService/RateMeal"
	MealServiceReloadMealsProcedure = "/mealtracker.v1.MealService/ReloadMeals"
)

// MealServiceHandler is implemented by the server side of the meal service.
type MealServiceHandler interface {
	ListMeals(context.Context, *connect.Request[ListMealsRequest]) (*connect.Response[ListMealsResponse], error)
	GetMeal(context.Context, *connect.Request[GetMealRequest]) (*connect.Response[GetMealResponse], error)
	AddMeal(context.Context, *connect.Request[AddMealRequest]) (*connect.Response[AddMealResponse], error)
	UpdateMeal(context.Context, *connect.Request[UpdateMealRequest]) (*connect.Response[UpdateMealResponse], error)
	DeleteMeal(context.Context, *connect.Request[DeleteMealRequest]) (*connect.Response[DeleteMealResponse], error)
	RateMeal(context.Context, *connect.Request[RateMealRequest]) (*connect.Response[RateMealResponse], error)
	ReloadMeals(context.Context, *connect.Request[ReloadMealsRequest]) (*connect.Response[ReloadMealsResponse], error)
}

// NewMealServiceHandler builds an HTTP handler for svc and returns the path
// prefix to mount it on.
func NewMealServiceHandler(svc MealServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	handlers := map[string]http.Handler{
		MealServiceListMealsProcedure:   connect.NewUnaryHandler(MealServiceListMealsProcedure, svc.ListMeals, opts...),
		MealServiceGetMealProcedure:     connect.NewUnaryHandler(MealServiceGetMealProcedure, svc.GetMeal, opts...),
		MealServiceAddMealProcedure:     connect.NewUnaryHandler(MealServiceAddMealProcedure, svc.AddMeal, opts...),
		MealServiceUpdateMealProcedure:  connect.NewUnaryHandler(MealServiceUpdateMealProcedure, svc.UpdateMeal, opts...),
		MealServiceDeleteMealProcedure:  connect.NewUnaryHandler(MealServiceDeleteMealProcedure, svc.DeleteMeal, opts...),
		MealServiceRateMealProcedure:    connect.NewUnaryHandler(MealServiceRateMealProcedure, svc.RateMeal, opts...),
		MealServiceReloadMealsProcedure: connect.NewUnaryHandler(MealServiceReloadMealsProcedure, svc.ReloadMeals, opts...),
	}

	return "/" + MealServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// MealServiceClient is a client for the meal service.
type MealServiceClient interface {
	ListMeals(context.Context, *connect.Request[ListMealsRequest]) (*connect.Response[ListMealsResponse], error)
	GetMeal(context.Context, *connect.Request[GetMealRequest]) (*connect.Response[GetMealResponse], error)
	AddMeal(context.Context, *connect.Request[AddMealRequest]) (*connect.Response[AddMealResponse], error)
	UpdateMeal(context.Context, *connect.Request[UpdateMealRequest]) (*connect.Response[UpdateMealResponse], error)
	DeleteMeal(context.Context, *connect.Request[DeleteMealRequest]) (*connect.Response[DeleteMealResponse], error)
	RateMeal(context.Context, *connect.Request[RateMealRequest]) (*connect.Response[RateMealResponse], error)
	ReloadMeals(context.Context, *connect.Request[ReloadMealsRequest]) (*connect.Response[ReloadMealsResponse], error)
}

// NewMealServiceClient constructs a client for the meal service at baseURL.
func NewMealServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) MealServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)

	return &mealServiceClient{
		listMeals:   connect.NewClient[ListMealsRequest, ListMealsResponse](httpClient, baseURL+MealServiceListMealsProcedure, opts...),
		getMeal:     connect.NewClient[GetMealRequest, GetMealResponse](httpClient, baseURL+MealServiceGetMealProcedure, opts...),
		addMeal:     connect.NewClient[AddMealRequest, AddMealResponse](httpClient, baseURL+MealServiceAddMealProcedure, opts...),
		updateMeal:  connect.NewClient[UpdateMealRequest, UpdateMealResponse](httpClient, baseURL+MealServiceUpdateMealProcedure, opts...),
		deleteMeal:  connect.NewClient[DeleteMealRequest, DeleteMealResponse](httpClient, baseURL+MealServiceDeleteMealProcedure, opts...),
		rateMeal:    connect.NewClient[RateMealRequest, RateMealResponse](httpClient, baseURL+MealServiceRateMealProcedure, opts...),
		reloadMeals: connect.NewClient[ReloadMealsRequest, ReloadMealsResponse](httpClient, baseURL+MealServiceReloadMealsProcedure, opts...),
	}
}

type mealServiceClient struct {
	listMeals   *connect.Client[ListMealsRequest, ListMealsResponse]
	getMeal     *connect.Client[GetMealRequest, GetMealResponse]
	addMeal     *connect.Client[AddMealRequest, AddMealResponse]
	updateMeal  *connect.Client[UpdateMealRequest, UpdateMealResponse]
	deleteMeal  *connect.Client[DeleteMealRequest, DeleteMealResponse]
	rateMeal    *connect.Client[RateMealRequest, RateMealResponse]
	reloadMeals *connect.Client[ReloadMealsRequest, ReloadMealsResponse]
}

func (c *mealServiceClient) ListMeals(ctx context.Context, req *connect.Request[ListMealsRequest]) (*connect.Response[ListMealsResponse], error) {
	return c.listMeals.CallUnary(ctx, req)
}

func (c *mealServiceClient) GetMeal(ctx context.Context, req *connect.Request[GetMealRequest]) (*connect.Response[GetMealResponse], error) {
	return c.getMeal.CallUnary(ctx, req)
}

func (c *mealServiceClient) AddMeal(ctx context.Context, req *connect.Request[AddMealRequest]) (*connect.Response[AddMealResponse], error) {
	return c.addMeal.CallUnary(ctx, req)
}

func (c *mealServiceClient) UpdateMeal(ctx context.Context, req *connect.Request[UpdateMealRequest]) (*connect.Response[UpdateMealResponse], error) {
	return c.updateMeal.CallUnary(ctx, req)
}

func (c *mealServiceClient) DeleteMeal(ctx context.Context, req *connect.Request[DeleteMealRequest]) (*connect.Response[DeleteMealResponse], error) {
	return c.deleteMeal.CallUnary(ctx, req)
}

func (c *mealServiceClient) RateMeal(ctx context.Context, req *connect.Request[RateMealRequest]) (*connect.Response[RateMealResponse], error) {
	return c.rateMeal.CallUnary(ctx, req)
}

func (c *mealServiceClient) ReloadMeals(ctx context.Context, req *connect.Request[ReloadMealsRequest]) (*connect.Response[ReloadMealsResponse], error) {
	return c.reloadMeals.CallUnary(ctx, req)
}

// UnimplementedMealServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedMealServiceHandler struct{}

func (UnimplementedMealServiceHandler) ListMeals(context.Context, *connect.Request[ListMealsRequest]) (*connect.Response[ListMealsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("mealtracker.v1.MealService.ListMeals is not implemented"))
}

func (UnimplementedMealServiceHandler) GetMeal(context.Context, *connect.Request[GetMealRequest]) (*connect.Response[GetMealResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("mealtracker.v1.MealService.GetMeal is not implemented"))
}

func (UnimplementedMealServiceHandler) AddMeal(context.Context, *connect.Request[AddMealRequest]) (*connect.Response[AddMealResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("mealtracker.v1.MealService.AddMeal is not implemented"))
}

func (UnimplementedMealServiceHandler) UpdateMeal(context.Context, *connect.Request[UpdateMealRequest]) (*connect.Response[UpdateMealResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("mealtracker.v1.MealService.UpdateMeal is not implemented"))
}

func (UnimplementedMealServiceHandler) DeleteMeal(context.Context, *connect.Request[DeleteMealRequest]) (*connect.Response[DeleteMealResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("mealtracker.v1.MealService.DeleteMeal is not implemented"))
}

func (UnimplementedMealServiceHandler) RateMeal(context.Context, *connect.Request[RateMealRequest]) (*connect.Response[RateMealResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("mealtracker.v1.MealService.RateMeal is not implemented"))
}

func (UnimplementedMealServiceHandler) ReloadMeals(context.Context, *connect.Request[ReloadMealsRequest]) (*connect.Response[ReloadMealsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("mealtracker.v1.MealService.ReloadMeals is not implemented"))
}
