package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/scan/domain"
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/pkg/db/pagination"
)

// InvoiceView regroups the raw per-unit rows of one invoice into
// invoice → SKU → serial rollups and paginates the grouped result with
// the configured fixed page size, independent from row-level paging.
func (s *Service) InvoiceView(ctx context.Context, req domain.InvoiceViewRequest) (pagination.Page[domain.InvoiceGroup], error) {
	invoiceNumber := strings.TrimSpace(req.InvoiceNumber)
	if invoiceNumber == "" {
		return pagination.Page[domain.InvoiceGroup]{}, domain.ErrInvoiceNumberRequired
	}

	rows, err := s.repo.FindByInvoice(ctx, s.db, invoiceNumber)
	if err != nil {
		return pagination.Page[domain.InvoiceGroup]{}, fmt.Errorf("fetch invoice rows: %w", err)
	}

	groups := GroupByInvoice(rows)

	page := pagination.Request{Page: req.Page, PerPage: s.settings.Current().Invoice.PageSize}.
		Normalize(s.settings.Current().Invoice.PageSize)
	return pagination.Slice(groups, page), nil
}

// GroupByInvoice partitions records by invoice number in encounter
// order, then partitions each invoice by the (SKU, resolved item name)
// pair. The pair is the grouping key on purpose: two records with the
// same SKU but different resolved names form separate groups.
//
// The invoice total sums the raw qty columns while each SKU total
// counts serial entries; the two can diverge and both are carried
// through unreconciled.
func GroupByInvoice(rows []domain.ScanRecord) []domain.InvoiceGroup {
	type invoicePartition struct {
		group    domain.InvoiceGroup
		skuOrder []string
		skus     map[string]*domain.SkuGroup
	}

	order := make([]string, 0)
	partitions := make(map[string]*invoicePartition)

	for _, row := range rows {
		part, ok := partitions[row.InvoiceNumber]
		if !ok {
			userName, userEmail := domain.UnknownUserName, domain.UnknownUserEmail
			if row.User != nil {
				userName, userEmail = row.User.Name, row.User.Email
			}
			part = &invoicePartition{
				group: domain.InvoiceGroup{
					InvoiceNumber: row.InvoiceNumber,
					UserName:      userName,
					UserEmail:     userEmail,
					CreatedAt:     row.CreatedAt,
					UpdatedAt:     row.UpdatedAt,
				},
				skus: make(map[string]*domain.SkuGroup),
			}
			partitions[row.InvoiceNumber] = part
			order = append(order, row.InvoiceNumber)
		}

		part.group.TotalQty += row.Qty

		itemName := domain.UnknownItemName
		if row.MasterItem != nil {
			itemName = row.MasterItem.Name
		}

		key := row.SKU + "|" + itemName
		sku, ok := part.skus[key]
		if !ok {
			sku = &domain.SkuGroup{SKU: row.SKU, ItemName: itemName}
			part.skus[key] = sku
			part.skuOrder = append(part.skuOrder, key)
		}
		sku.TotalQty++
		sku.SerialNumbers = append(sku.SerialNumbers, domain.SerialEntry{
			BarcodeSN: row.BarcodeSN,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}

	groups := make([]domain.InvoiceGroup, 0, len(order))
	for _, invoiceNumber := range order {
		part := partitions[invoiceNumber]
		part.group.Items = make([]domain.SkuGroup, 0, len(part.skuOrder))
		for _, key := range part.skuOrder {
			part.group.Items = append(part.group.Items, *part.skus[key])
		}
		groups = append(groups, part.group)
	}
	return groups
}
