package handlers

import (
	"log"
	"math"
	"net/url"
	"strconv"
	"strings"

	"proposalgen/services"
	"proposalgen/templates"
)

// formString returns a pointer to the form value when the key was submitted.
func formString(form url.Values, key string) *string {
	if !form.Has(key) {
		return nil
	}
	v := form.Get(key)
	return &v
}

// formInt parses an integer field; missing or malformed values are skipped.
func formInt(form url.Values, key string) *int {
	raw := strings.TrimSpace(form.Get(key))
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("forms: ignoring %s=%q: %v", key, raw, err)
		return nil
	}
	return &n
}

func formFloat(form url.Values, key string) *float64 {
	raw := strings.TrimSpace(form.Get(key))
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		log.Printf("forms: ignoring %s=%q: %v", key, raw, err)
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		log.Printf("forms: ignoring non-finite %s=%q", key, raw)
		return nil
	}
	return &f
}

// applyStepForm writes the fields of step found in form into p. Fields that
// were not submitted keep their current value.
func applyStepForm(step templates.Step, p *services.Proposal, form url.Values) {
	d := p.Snapshot()
	switch step {
	case templates.StepClient:
		p.SetClient(services.ClientPatch{
			Name:      formString(form, "client_name"),
			Date:      formString(form, "client_date"),
			Reference: formString(form, "client_reference"),
			Validity:  formString(form, "client_validity"),
		})

	case templates.StepContext:
		if v := formString(form, "context"); v != nil {
			p.SetContext(*v)
		}
		if v := formString(form, "need"); v != nil {
			p.SetNeed(*v)
		}

	case templates.StepTechSpecs:
		for _, s := range d.TechSpecs {
			text := formString(form, "spec_text_"+s.ID)
			if text == nil {
				continue
			}
			patch := services.TechSpecPatch{
				Text:     text,
				Included: services.Ptr(form.Get("spec_included_"+s.ID) == "on"),
			}
			if f, err := services.ParseFeasibility(form.Get("spec_feasibility_" + s.ID)); err == nil {
				patch.Feasibility = &f
			}
			if err := p.UpdateTechSpec(s.ID, patch); err != nil {
				log.Printf("forms: %v", err)
			}
		}

	case templates.StepMethodology:
		for _, f := range services.MethodologyFields {
			if v := formString(form, f.String()); v != nil {
				if err := p.SetMethodology(f, *v); err != nil {
					log.Printf("forms: %v", err)
				}
			}
		}

	case templates.StepWorkPackages:
		for _, wp := range d.WorkPackages {
			patch := services.WorkPackagePatch{
				Title:         formString(form, "wp_title_"+wp.ID),
				DurationWeeks: formInt(form, "wp_weeks_"+wp.ID),
				Objective:     formString(form, "wp_objective_"+wp.ID),
				Description:   formString(form, "wp_description_"+wp.ID),
			}
			if err := p.UpdateWorkPackage(wp.ID, patch); err != nil {
				log.Printf("forms: %v", err)
				continue
			}
			for j := range wp.Deliverables {
				if v := formString(form, "wp_deliverable_"+wp.ID+"_"+strconv.Itoa(j)); v != nil {
					if err := p.SetWorkPackageDeliverable(wp.ID, j, *v); err != nil {
						log.Printf("forms: %v", err)
					}
				}
			}
		}

	case templates.StepResources:
		for i := range d.Team {
			n := strconv.Itoa(i)
			patch := services.TeamMemberPatch{
				Role:    formString(form, "team_role_"+n),
				Name:    formString(form, "team_name_"+n),
				Contact: formString(form, "team_contact_"+n),
			}
			if err := p.UpdateTeamMember(i, patch); err != nil {
				log.Printf("forms: %v", err)
			}
		}
		for i, dl := range d.Deliverables {
			n := strconv.Itoa(i)
			if v := formString(form, "deliverable_title_"+n); v != nil {
				dl.Title = *v
			}
			if v := formString(form, "deliverable_format_"+n); v != nil {
				dl.Format = *v
			}
			if err := p.UpdateDeliverable(i, dl); err != nil {
				log.Printf("forms: %v", err)
			}
		}

	case templates.StepPlanning:
		p.SetPlanning(services.PlanningPatch{
			StartDate:     formString(form, "start_date"),
			VacationWeeks: formInt(form, "vacation_weeks"),
		})

	case templates.StepBudget:
		p.SetBudget(services.BudgetPatch{
			DailyRate: formFloat(form, "daily_rate"),
			FTECount:  formInt(form, "fte_count"),
			VATRate:   formFloat(form, "vat_rate"),
		})
	}
}
