package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gethexy/pkg/leadform"
	"github.com/rs/zerolog/log"
)

// LeadForm is the contact form shown at the end of the flow
type LeadForm struct {
	widget.BaseWidget

	Email   *widget.Entry
	Name    *widget.Entry
	Company *widget.Entry
	Bucket  *widget.RadioGroup
	Submit  *widget.Button
	Status  *widget.Label

	onSubmit func(leadform.Lead) error
}

// NewLeadForm creates the form; onSubmit receives the entered lead
func NewLeadForm(onSubmit func(leadform.Lead) error) *LeadForm {
	f := &LeadForm{
		Email:    widget.NewEntry(),
		Name:     widget.NewEntry(),
		Company:  widget.NewEntry(),
		Status:   widget.NewLabel(""),
		onSubmit: onSubmit,
	}

	f.Email.SetPlaceHolder("Enter your email")
	f.Name.SetPlaceHolder("Enter your name")
	f.Company.SetPlaceHolder("Company")

	labels := make([]string, len(leadform.Buckets))
	for i, b := range leadform.Buckets {
		labels[i] = b.Label
	}
	f.Bucket = widget.NewRadioGroup(labels, nil)
	f.Bucket.Horizontal = true

	f.Submit = widget.NewButton(leadform.SubmitLabel, f.submit)
	f.Submit.Importance = widget.HighImportance

	f.ExtendBaseWidget(f)
	return f
}

// Lead returns what has been entered so far
func (f *LeadForm) Lead() leadform.Lead {
	lead := leadform.Lead{
		Email:   f.Email.Text,
		Name:    f.Name.Text,
		Company: f.Company.Text,
	}
	for _, b := range leadform.Buckets {
		if b.Label == f.Bucket.Selected {
			lead.Bucket = b.ID
		}
	}
	return lead
}

func (f *LeadForm) submit() {
	if f.onSubmit == nil {
		return
	}
	if err := f.onSubmit(f.Lead()); err != nil {
		log.Error().Err(err).Msg("app: lead submission failed")
		f.Status.SetText("Something went wrong, please try again")
		return
	}
	f.Status.SetText("Thank you!")
}

// CreateRenderer creates the renderer for the widget
func (f *LeadForm) CreateRenderer() fyne.WidgetRenderer {
	headline := widget.NewLabelWithStyle(leadform.Headline, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	content := container.NewVBox(
		headline,
		f.Email,
		container.NewGridWithColumns(2, f.Name, f.Company),
		widget.NewLabel(leadform.BucketLabel),
		f.Bucket,
		f.Submit,
		f.Status,
	)
	return widget.NewSimpleRenderer(container.NewCenter(container.NewPadded(content)))
}
