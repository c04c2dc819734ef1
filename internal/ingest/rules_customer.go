package ingest

import (
	"github.com/yungbote/storefront-graph/internal/domain"
)

// BuildCustomerPlan maps one customer record: the Customer node and the
// address, payment-method and wishlist fan-out. Customer properties are
// create-only; addresses and payment methods are dimension nodes owned
// by the customer.
func BuildCustomerPlan(c *domain.Customer) (*Plan, error) {
	if c.CustomerID == "" {
		return nil, &ValidationError{Family: FamilyCustomer, Field: "customer_id"}
	}

	plan := &Plan{Family: FamilyCustomer, RecordID: c.CustomerID}
	customer := NodeRef{Label: "Customer", KeyField: "customer_id", KeyValue: c.CustomerID}

	plan.node(customer, map[string]any{
		"email":                   c.Email,
		"first_name":              c.FirstName,
		"last_name":               c.LastName,
		"phone":                   c.Phone,
		"customer_segment":        c.CustomerSegment,
		"marketing_consent":       c.MarketingConsent,
		"personalization_details": rawString(c.PersonalizationDetails),
		"notes":                   c.Notes,
		"status":                  c.Status,
		"deleted":                 c.Deleted,
		"created_at":              c.CreatedAt,
		"updated_at":              c.UpdatedAt,
	}, nil)

	for _, a := range c.Addresses {
		if a.AddressID == "" {
			return nil, &ValidationError{Family: FamilyCustomer, RecordID: c.CustomerID, Field: "addresses[].address_id"}
		}
		address := NodeRef{Label: "Address", KeyField: "address_id", KeyValue: a.AddressID}
		plan.node(address, map[string]any{
			"type":        a.Type,
			"line1":       a.Line1,
			"line2":       a.Line2,
			"city":        a.City,
			"region":      a.Region,
			"postal_code": a.PostalCode,
			"country":     a.Country,
		}, nil)
		plan.edge(&EdgeMerge{From: customer, To: address, Type: "HAS_ADDRESS"})
	}

	for _, pm := range c.PaymentMethods {
		if pm.PaymentMethodID == "" {
			return nil, &ValidationError{Family: FamilyCustomer, RecordID: c.CustomerID, Field: "payment_methods[].payment_method_id"}
		}
		method := NodeRef{Label: "PaymentMethod", KeyField: "payment_method_id", KeyValue: pm.PaymentMethodID}
		plan.node(method, map[string]any{
			"type":         pm.Type,
			"brand":        pm.Brand,
			"last_four":    pm.LastFour,
			"expiry_month": pm.ExpiryMonth,
			"expiry_year":  pm.ExpiryYear,
		}, nil)
		plan.edge(&EdgeMerge{From: customer, To: method, Type: "HAS_PAYMENT_METHOD"})
	}

	for _, w := range c.Wishlist {
		if w.VariantID == "" {
			return nil, &ValidationError{Family: FamilyCustomer, RecordID: c.CustomerID, Field: "wishlist[].variant_id"}
		}
		plan.edge(&EdgeMerge{
			From:     customer,
			To:       NodeRef{Label: "Variant", KeyField: "variant_id", KeyValue: w.VariantID},
			Type:     "WISHES_FOR",
			OnCreate: map[string]any{"added_at": w.AddedAt},
		})
	}

	return plan, nil
}
