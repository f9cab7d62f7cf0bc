package dataset

import (
	"fmt"
	"strings"
)

type validator interface {
	validate(path string) error
}

func required(path, value string) error {
	if strings.TrimSpace(value) == "" {
		return violation(path, "required field is empty")
	}
	return nil
}

func requiredList[T any](path string, list []T) error {
	if list == nil {
		return violation(path, "required list is missing")
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func at(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

func (u *User) validate(path string) error {
	return firstError(
		required(path+".id", u.ID),
		required(path+".name", u.Name),
		required(path+".email", u.Email),
	)
}

func (d *Dashboard) validate(path string) error {
	if err := firstError(
		requiredList(path+".quickActions", d.QuickActions),
		requiredList(path+".recentActivity", d.RecentActivity),
	); err != nil {
		return err
	}
	for i, a := range d.QuickActions {
		if err := required(at(path+".quickActions", i)+".id", a.ID); err != nil {
			return err
		}
	}
	for i, a := range d.RecentActivity {
		if err := required(at(path+".recentActivity", i)+".id", a.ID); err != nil {
			return err
		}
	}
	return nil
}

func (inv *Invoices) validate(path string) error {
	if err := requiredList(path+".recent", inv.Recent); err != nil {
		return err
	}
	for i, invoice := range inv.Recent {
		p := at(path+".recent", i)
		if err := firstError(
			required(p+".id", invoice.ID),
			required(p+".client", invoice.Client),
			requiredList(p+".items", invoice.Items),
		); err != nil {
			return err
		}
		if !invoice.Status.IsValid() {
			return violation(p+".status", "unknown invoice status %q", invoice.Status)
		}
		for j, item := range invoice.Items {
			if err := required(at(p+".items", j)+".description", item.Description); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Expenses) validate(path string) error {
	if err := firstError(
		requiredList(path+".categories", e.Categories),
		requiredList(path+".recent", e.Recent),
	); err != nil {
		return err
	}
	for i, c := range e.Categories {
		if err := required(at(path+".categories", i)+".name", c.Name); err != nil {
			return err
		}
	}
	for i, expense := range e.Recent {
		p := at(path+".recent", i)
		if err := required(p+".id", expense.ID); err != nil {
			return err
		}
		if !expense.Status.IsValid() {
			return violation(p+".status", "unknown expense status %q", expense.Status)
		}
	}
	return nil
}

func (w *Wallet) validate(path string) error {
	if err := firstError(
		requiredList(path+".accounts", w.Accounts),
		requiredList(path+".recentTransactions", w.RecentTransactions),
	); err != nil {
		return err
	}
	for i, a := range w.Accounts {
		p := at(path+".accounts", i)
		if err := firstError(
			required(p+".id", a.ID),
			required(p+".name", a.Name),
			required(p+".currency", a.Currency),
		); err != nil {
			return err
		}
	}
	for i, tx := range w.RecentTransactions {
		p := at(path+".recentTransactions", i)
		if err := required(p+".id", tx.ID); err != nil {
			return err
		}
		if !tx.Type.IsValid() {
			return violation(p+".type", "unknown transaction type %q", tx.Type)
		}
	}
	return nil
}

func (pr *Profile) validate(path string) error {
	if err := requiredList(path+".settings", pr.Settings); err != nil {
		return err
	}
	for i, s := range pr.Settings {
		p := at(path+".settings", i)
		if err := firstError(
			required(p+".title", s.Title),
			required(p+".action", s.Action),
		); err != nil {
			return err
		}
	}
	return nil
}
