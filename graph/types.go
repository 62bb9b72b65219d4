package graph

import (
	"crm-service/models"

	"github.com/graphql-go/graphql"
)

// Output object types. Resolvers accept both value and pointer sources
// because list queries yield values while mutation payloads carry pointers.

func customerSource(src interface{}) *models.Customer {
	switch c := src.(type) {
	case models.Customer:
		return &c
	case *models.Customer:
		return c
	}
	return nil
}

func productSource(src interface{}) *models.Product {
	switch p := src.(type) {
	case models.Product:
		return &p
	case *models.Product:
		return p
	}
	return nil
}

func orderSource(src interface{}) *models.Order {
	switch o := src.(type) {
	case models.Order:
		return &o
	case *models.Order:
		return o
	}
	return nil
}

var customerType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Customer",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if c := customerSource(p.Source); c != nil {
					return c.ID.String(), nil
				}
				return nil, nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if c := customerSource(p.Source); c != nil {
					return c.Name, nil
				}
				return nil, nil
			},
		},
		"email": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if c := customerSource(p.Source); c != nil {
					return c.Email, nil
				}
				return nil, nil
			},
		},
		"phone": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if c := customerSource(p.Source); c != nil && c.Phone != nil {
					return *c.Phone, nil
				}
				return nil, nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.DateTime,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if c := customerSource(p.Source); c != nil {
					return c.CreatedAt, nil
				}
				return nil, nil
			},
		},
		"updatedAt": &graphql.Field{
			Type: graphql.DateTime,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if c := customerSource(p.Source); c != nil {
					return c.UpdatedAt, nil
				}
				return nil, nil
			},
		},
	},
})

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if prod := productSource(p.Source); prod != nil {
					return prod.ID.String(), nil
				}
				return nil, nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if prod := productSource(p.Source); prod != nil {
					return prod.Name, nil
				}
				return nil, nil
			},
		},
		"price": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Float),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if prod := productSource(p.Source); prod != nil {
					return prod.Price.InexactFloat64(), nil
				}
				return nil, nil
			},
		},
		"stock": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if prod := productSource(p.Source); prod != nil {
					return prod.Stock, nil
				}
				return nil, nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.DateTime,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if prod := productSource(p.Source); prod != nil {
					return prod.CreatedAt, nil
				}
				return nil, nil
			},
		},
		"updatedAt": &graphql.Field{
			Type: graphql.DateTime,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if prod := productSource(p.Source); prod != nil {
					return prod.UpdatedAt, nil
				}
				return nil, nil
			},
		},
	},
})

var orderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Order",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if o := orderSource(p.Source); o != nil {
					return o.ID.String(), nil
				}
				return nil, nil
			},
		},
		"customer": &graphql.Field{
			Type: graphql.NewNonNull(customerType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if o := orderSource(p.Source); o != nil {
					return o.Customer, nil
				}
				return nil, nil
			},
		},
		"products": &graphql.Field{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(productType))),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if o := orderSource(p.Source); o != nil {
					return o.Products, nil
				}
				return nil, nil
			},
		},
		"totalAmount": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Float),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if o := orderSource(p.Source); o != nil {
					return o.TotalAmount.InexactFloat64(), nil
				}
				return nil, nil
			},
		},
		"orderDate": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if o := orderSource(p.Source); o != nil {
					return o.OrderDate, nil
				}
				return nil, nil
			},
		},
	},
})

// Input types for mutations.

var customerInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CustomerInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"phone": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var productInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProductInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"price": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"stock": &graphql.InputObjectFieldConfig{Type: graphql.Int},
	},
})

var orderInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"customerId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"productIds": &graphql.InputObjectFieldConfig{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID))),
		},
		"orderDate": &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
	},
})

// Filter input types for the list queries. All fields are optional and
// combine with logical AND.

var customerFilterInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CustomerFilterInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":           &graphql.InputObjectFieldConfig{Type: graphql.String},
		"nameIcontains":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"email":          &graphql.InputObjectFieldConfig{Type: graphql.String},
		"emailIcontains": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"phone":          &graphql.InputObjectFieldConfig{Type: graphql.String},
		"phoneIcontains": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"phonePattern":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"createdAtGte":   &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"createdAtLte":   &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
	},
})

var productFilterInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProductFilterInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":          &graphql.InputObjectFieldConfig{Type: graphql.String},
		"nameIcontains": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"priceGte":      &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"priceLte":      &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"stockGte":      &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"stockLte":      &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"lowStock":      &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
	},
})

var orderFilterInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderFilterInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"totalAmountGte": &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"totalAmountLte": &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"orderDateGte":   &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"orderDateLte":   &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"customerName":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"customerEmail":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"productName":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"productId":      &graphql.InputObjectFieldConfig{Type: graphql.ID},
	},
})

// Mutation payload types: every mutation answers with success/message plus
// the created entity (or null on failure).

var createCustomerPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CreateCustomerPayload",
	Fields: graphql.Fields{
		"customer": &graphql.Field{Type: customerType},
		"message":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"success":  &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
	},
})

var bulkCreateCustomersPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "BulkCreateCustomersPayload",
	Fields: graphql.Fields{
		"customers": &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(customerType))},
		"errors":    &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
		"success":   &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
	},
})

var createProductPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CreateProductPayload",
	Fields: graphql.Fields{
		"product": &graphql.Field{Type: productType},
		"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
	},
})

var createOrderPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CreateOrderPayload",
	Fields: graphql.Fields{
		"order":   &graphql.Field{Type: orderType},
		"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
	},
})
