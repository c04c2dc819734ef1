package ingest

import (
	"github.com/yungbote/storefront-graph/internal/domain"
)

// BuildOrderPlan maps one order record: the Order node, the PLACED edge
// from a (possibly placeholder) Customer, the business entity and sales
// channel links, one CONTAINS edge per order line and the shipment
// fan-out. Order node properties and line properties refresh on match;
// an order export reflects current transactional state.
func BuildOrderPlan(o *domain.Order) (*Plan, error) {
	if o.OrderID == "" {
		return nil, &ValidationError{Family: FamilyOrder, Field: "order_id"}
	}
	if o.CustomerID == "" {
		return nil, &ValidationError{Family: FamilyOrder, RecordID: o.OrderID, Field: "customer_id"}
	}

	plan := &Plan{Family: FamilyOrder, RecordID: o.OrderID}
	order := NodeRef{Label: "Order", KeyField: "order_id", KeyValue: o.OrderID}

	props := map[string]any{
		"order_number":        o.OrderNumber,
		"status":              o.Status,
		"currency":            o.Currency,
		"totals":              rawString(o.Totals),
		"payments":            rawString(o.Payments),
		"applied_promotions":  rawString(o.AppliedPromotions),
		"external_references": rawString(o.ExternalReferences),
		"notes":               o.Notes,
		"created_at":          o.CreatedAt,
		"updated_at":          o.UpdatedAt,
		"order_created_date":  o.OrderCreatedDate,
	}
	plan.node(order, props, props)

	customer := NodeRef{Label: "Customer", KeyField: "customer_id", KeyValue: o.CustomerID}
	plan.edge(&EdgeMerge{From: customer, To: order, Type: "PLACED"})

	if o.BusinessEntityID != "" {
		entity := NodeRef{Label: "BusinessEntity", KeyField: "business_entity_id", KeyValue: o.BusinessEntityID}
		plan.edge(&EdgeMerge{From: order, To: entity, Type: "FOR_BUSINESS_ENTITY"})
	}

	if sc := o.SalesChannel; sc != nil {
		if sc.ChannelID == "" {
			return nil, &ValidationError{Family: FamilyOrder, RecordID: o.OrderID, Field: "sales_channel.channel_id"}
		}
		channel := NodeRef{Label: "SalesChannel", KeyField: "channel_id", KeyValue: sc.ChannelID}
		plan.node(channel, map[string]any{
			"name":   sc.Name,
			"type":   sc.Type,
			"status": sc.Status,
		}, nil)
		plan.edge(&EdgeMerge{From: order, To: channel, Type: "THROUGH_CHANNEL"})
	}

	for _, item := range o.OrderItems {
		if item.VariantID == "" {
			return nil, &ValidationError{Family: FamilyOrder, RecordID: o.OrderID, Field: "order_items[].variant_id"}
		}
		line := map[string]any{
			"quantity":        item.Quantity,
			"unit_price":      item.UnitPrice,
			"line_item_total": item.LineItemTotal,
		}
		plan.edge(&EdgeMerge{
			From:     order,
			To:       NodeRef{Label: "Variant", KeyField: "variant_id", KeyValue: item.VariantID},
			Type:     "CONTAINS",
			OnCreate: line,
			OnMatch:  line,
		})
	}

	for _, sh := range o.Shipments {
		if sh.ShipmentID == "" {
			return nil, &ValidationError{Family: FamilyOrder, RecordID: o.OrderID, Field: "shipments[].shipment_id"}
		}
		shipment := NodeRef{Label: "Shipment", KeyField: "shipment_id", KeyValue: sh.ShipmentID}
		state := map[string]any{
			"status":          sh.Status,
			"tracking_number": sh.TrackingNumber,
			"shipped_date":    sh.ShippedDate,
			"delivered_date":  sh.DeliveredDate,
		}
		plan.node(shipment, map[string]any{
			"status":          sh.Status,
			"carrier":         sh.Carrier,
			"tracking_number": sh.TrackingNumber,
			"shipped_date":    sh.ShippedDate,
			"delivered_date":  sh.DeliveredDate,
			"address":         rawString(sh.Address),
		}, state)
		plan.edge(&EdgeMerge{From: order, To: shipment, Type: "HAS_SHIPMENT"})

		for _, si := range sh.Items {
			if si.VariantID == "" {
				return nil, &ValidationError{Family: FamilyOrder, RecordID: o.OrderID, Field: "shipments[].items[].variant_id"}
			}
			qty := map[string]any{"quantity": si.Quantity}
			plan.edge(&EdgeMerge{
				From:     shipment,
				To:       NodeRef{Label: "Variant", KeyField: "variant_id", KeyValue: si.VariantID},
				Type:     "CONTAINS",
				OnCreate: qty,
				OnMatch:  qty,
			})
		}
	}

	return plan, nil
}
