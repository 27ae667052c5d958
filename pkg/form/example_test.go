package form_test

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func ExampleBool() {
	for _, v := range []any{0, true, nil, ""} {
		out, _ := form.Bool{}.Convert(v)
		fmt.Println(out)
	}
	// Output:
	// false
	// true
	// false
	// false
}

func ExampleString() {
	c := form.String{Max: 10}

	out, _ := c.Convert("Your eyes")
	fmt.Println(out)

	_, err := c.Convert("Follow where you lead")
	fmt.Println(err)
	// Output:
	// Your eyes
	// Enter a value less than 10 characters long
}

func ExampleDate() {
	c := form.Date{Earliest: time.Date(2009, 4, 22, 0, 0, 0, 0, time.UTC)}

	out, _ := c.Convert(time.Date(2010, 7, 11, 0, 0, 0, 0, time.UTC))
	fmt.Println(out.(time.Time).Format("2006-01-02"))

	_, err := c.Convert(time.Date(2005, 7, 11, 0, 0, 0, 0, time.UTC))
	fmt.Println(err)
	// Output:
	// 2010-07-11
	// Date must be after Wednesday, 22 April 2009
}

func ExampleEmail() {
	out, _ := form.Email{}.Convert("karl@monetate.com")
	fmt.Println(out)

	_, err := form.Email{}.Convert("karlmonetate")
	fmt.Println(err)
	// Output:
	// karl@monetate.com
	// An email address must contain a single @
}

func ExampleSchema() {
	s := form.NewSchema(
		form.WithField("first_name", form.String{Base: form.Base{NotEmpty: true}}),
		form.WithField("email", form.Email{}),
		form.WithField("password", form.SecurePassword{}),
		form.WithField("password_confirm", form.String{}),
		form.WithChained(form.FieldsMatch("password", "password_confirm")),
	)

	_, err := s.ConvertMap(map[string]any{
		"first_name":       "Karl",
		"email":            "karlmonetate",
		"password":         "abcdefg1",
		"password_confirm": "abcdefg2",
	})

	verrs := validator.ExtractValidationErrors(err)
	for _, field := range verrs.Fields() {
		fmt.Printf("%s: %s\n", field, verrs.Get(field)[0])
	}
	// Output:
	// email: An email address must contain a single @
	// password_confirm: Fields do not match
}
