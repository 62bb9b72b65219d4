package graph

import (
	"errors"
	"fmt"

	"crm-service/services"

	"github.com/graphql-go/graphql"
)

// Resolver bundles the domain services the schema resolves against.
type Resolver struct {
	customers *services.CustomerService
	products  *services.ProductService
	orders    *services.OrderService
}

func NewResolver(
	customers *services.CustomerService,
	products *services.ProductService,
	orders *services.OrderService,
) *Resolver {
	return &Resolver{
		customers: customers,
		products:  products,
		orders:    orders,
	}
}

// validationFailure reports whether err is one of the typed validation
// outcomes that map to a {success: false, message} response verbatim.
func validationFailure(err error) bool {
	var invalidProducts *services.InvalidProductsError
	return errors.Is(err, services.ErrDuplicateEmail) ||
		errors.Is(err, services.ErrInvalidPhoneFormat) ||
		errors.Is(err, services.ErrInvalidPrice) ||
		errors.Is(err, services.ErrNegativeStock) ||
		errors.Is(err, services.ErrCustomerNotFound) ||
		errors.Is(err, services.ErrEmptyProductList) ||
		errors.As(err, &invalidProducts)
}

// failureMessage converts any error into the user-facing mutation message.
// Typed validation failures keep their text; everything else lands in the
// "Error creating <entity>: ..." catch-all bucket.
func failureMessage(entity string, err error) string {
	if validationFailure(err) {
		return err.Error()
	}
	return fmt.Sprintf("Error creating %s: %v", entity, err)
}

// NewSchema builds the executable GraphQL schema: the hello/customers/
// products/orders queries and the four creation mutations. Mutations never
// surface transport-level errors for domain failures; callers check the
// success flag on the payload.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"hello": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return "Hello, GraphQL!", nil
				},
			},
			"customers": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(customerType)),
				Args: graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: customerFilterInputType},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					filter := customerFilterFromArgs(argMap(p.Args, "filter"))
					return r.customers.List(p.Context, filter)
				},
			},
			"products": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(productType)),
				Args: graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: productFilterInputType},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					filter := productFilterFromArgs(argMap(p.Args, "filter"))
					return r.products.List(p.Context, filter)
				},
			},
			"orders": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(orderType)),
				Args: graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: orderFilterInputType},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					filter, err := orderFilterFromArgs(argMap(p.Args, "filter"))
					if err != nil {
						return nil, err
					}
					return r.orders.List(p.Context, filter)
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createCustomer": &graphql.Field{
				Type: graphql.NewNonNull(createCustomerPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(customerInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					req := customerRequestFromInput(argMap(p.Args, "input"))
					customer, err := r.customers.Create(p.Context, req)
					if err != nil {
						return map[string]interface{}{
							"customer": nil,
							"message":  failureMessage("customer", err),
							"success":  false,
						}, nil
					}
					return map[string]interface{}{
						"customer": customer,
						"message":  "Customer created successfully",
						"success":  true,
					}, nil
				},
			},
			"bulkCreateCustomers": &graphql.Field{
				Type: graphql.NewNonNull(bulkCreateCustomersPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(customerInputType))),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					raw, _ := p.Args["input"].([]interface{})
					reqs := make([]services.CreateCustomerRequest, 0, len(raw))
					for _, item := range raw {
						if m, ok := item.(map[string]interface{}); ok {
							reqs = append(reqs, customerRequestFromInput(m))
						}
					}

					created, errs := r.customers.BulkCreate(p.Context, reqs)
					return map[string]interface{}{
						"customers": created,
						"errors":    errs,
						"success":   len(created) > 0,
					}, nil
				},
			},
			"createProduct": &graphql.Field{
				Type: graphql.NewNonNull(createProductPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					req := productRequestFromInput(argMap(p.Args, "input"))
					product, err := r.products.Create(p.Context, req)
					if err != nil {
						return map[string]interface{}{
							"product": nil,
							"message": failureMessage("product", err),
							"success": false,
						}, nil
					}
					return map[string]interface{}{
						"product": product,
						"message": "Product created successfully",
						"success": true,
					}, nil
				},
			},
			"createOrder": &graphql.Field{
				Type: graphql.NewNonNull(createOrderPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(orderInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					req, err := orderRequestFromInput(argMap(p.Args, "input"))
					if err != nil {
						return map[string]interface{}{
							"order":   nil,
							"message": failureMessage("order", err),
							"success": false,
						}, nil
					}

					order, err := r.orders.Create(p.Context, req)
					if err != nil {
						return map[string]interface{}{
							"order":   nil,
							"message": failureMessage("order", err),
							"success": false,
						}, nil
					}
					return map[string]interface{}{
						"order": order,
						"message": fmt.Sprintf(
							"Order created successfully with total amount: $%s",
							order.TotalAmount.StringFixed(2),
						),
						"success": true,
					}, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
