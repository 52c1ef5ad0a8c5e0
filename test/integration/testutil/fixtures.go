package testutil

import (
	"time"

	"barkeep/pkg/model"
)

type BarBuilder struct {
	bar model.Bar
}

func NewBarBuilder() *BarBuilder {
	return &BarBuilder{
		bar: model.Bar{
			Name:            "The Local",
			Address:         "12 Allenby St",
			City:            "Tel Aviv",
			ContactPhone:    "+972501234567",
			DiscountPercent: 0,
			CreatedAt:       time.Now().UTC(),
		},
	}
}

func (b *BarBuilder) WithName(name string) *BarBuilder {
	b.bar.Name = name
	return b
}

func (b *BarBuilder) WithCity(city string) *BarBuilder {
	b.bar.City = city
	return b
}

func (b *BarBuilder) WithDiscount(percent float64) *BarBuilder {
	b.bar.DiscountPercent = percent
	return b
}

func (b *BarBuilder) Build() model.Bar {
	return b.bar
}

type TableBuilder struct {
	table model.Table
}

func NewTableBuilder(barID string) *TableBuilder {
	return &TableBuilder{
		table: model.Table{
			BarID:     barID,
			Label:     "T1",
			TableType: "booth",
			Capacity:  4,
			BasePrice: 50,
			Status:    model.TableAvailable,
			CreatedAt: time.Now().UTC(),
		},
	}
}

func (b *TableBuilder) WithLabel(label string) *TableBuilder {
	b.table.Label = label
	return b
}

func (b *TableBuilder) WithCapacity(capacity int) *TableBuilder {
	b.table.Capacity = capacity
	return b
}

func (b *TableBuilder) WithBasePrice(price float64) *TableBuilder {
	b.table.BasePrice = price
	return b
}

func (b *TableBuilder) Build() model.Table {
	return b.table
}

type DrinkBuilder struct {
	drink model.Drink
}

func NewDrinkBuilder(barID string) *DrinkBuilder {
	return &DrinkBuilder{
		drink: model.Drink{
			BarID:     barID,
			Name:      "House Stout",
			UnitPrice: 10,
			InStock:   true,
			CreatedAt: time.Now().UTC(),
		},
	}
}

func (b *DrinkBuilder) WithName(name string) *DrinkBuilder {
	b.drink.Name = name
	return b
}

func (b *DrinkBuilder) WithUnitPrice(price float64) *DrinkBuilder {
	b.drink.UnitPrice = price
	return b
}

func (b *DrinkBuilder) OutOfStock() *DrinkBuilder {
	b.drink.InStock = false
	return b
}

func (b *DrinkBuilder) Build() model.Drink {
	return b.drink
}

type AccountBuilder struct {
	account model.Account
}

func NewAccountBuilder() *AccountBuilder {
	return &AccountBuilder{
		account: model.Account{
			Name:      "Dana",
			Phone:     "+972540000001",
			Role:      model.RoleCustomer,
			CreatedAt: time.Now().UTC(),
		},
	}
}

func (b *AccountBuilder) WithName(name string) *AccountBuilder {
	b.account.Name = name
	return b
}

func (b *AccountBuilder) WithPhone(phone string) *AccountBuilder {
	b.account.Phone = phone
	return b
}

func (b *AccountBuilder) AsStaff(barID string) *AccountBuilder {
	b.account.Role = model.RoleStaff
	b.account.BarID = barID
	return b
}

func (b *AccountBuilder) AsAdmin() *AccountBuilder {
	b.account.Role = model.RoleAdmin
	return b
}

func (b *AccountBuilder) Build() model.Account {
	return b.account
}

type WindowBuilder struct {
	window model.OperatingWindow
}

func NewWindowBuilder(barID string) *WindowBuilder {
	return &WindowBuilder{
		window: model.OperatingWindow{
			BarID:      barID,
			DayOfWeek:  "Monday",
			StartClock: "12:00",
			EndClock:   "23:00",
			CreatedAt:  time.Now().UTC(),
		},
	}
}

func (b *WindowBuilder) ForDay(day string) *WindowBuilder {
	b.window.DayOfWeek = day
	b.window.Date = ""
	return b
}

func (b *WindowBuilder) ForDate(date string) *WindowBuilder {
	b.window.Date = date
	b.window.DayOfWeek = ""
	return b
}

func (b *WindowBuilder) Between(start, end string) *WindowBuilder {
	b.window.StartClock = start
	b.window.EndClock = end
	return b
}

func (b *WindowBuilder) Build() model.OperatingWindow {
	return b.window
}
