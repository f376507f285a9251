package leadform

import (
	"testing"

	"github.com/launchpadhq/launchpad/pkg/models"
	"github.com/launchpadhq/launchpad/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_AddQuestion(t *testing.T) {
	builder := NewBuilder(testutil.CreateTestLeadForm())

	question, err := builder.AddQuestion(models.QuestionTypeEmail, "Work email")
	require.NoError(t, err)

	assert.NotEmpty(t, question.ID)
	assert.Equal(t, models.QuestionTypeEmail, question.Type)
	assert.Equal(t, "Work email", question.Label)
	assert.Nil(t, question.Options)
	assert.Len(t, builder.Form().Questions, 1)
}

func TestBuilder_AddQuestion_ChoiceTypeSeedsOptions(t *testing.T) {
	builder := NewBuilder(testutil.CreateTestLeadForm())

	question, err := builder.AddQuestion(models.QuestionTypeDropdown, "Company size")
	require.NoError(t, err)

	assert.NotNil(t, question.Options)
	assert.Empty(t, question.Options)
}

func TestBuilder_AddQuestion_UnknownType(t *testing.T) {
	builder := NewBuilder(testutil.CreateTestLeadForm())

	question, err := builder.AddQuestion(models.QuestionType("HOLOGRAM"), "Nope")
	require.Error(t, err)
	assert.Nil(t, question)
	assert.ErrorIs(t, err, ErrInvalidQuestionType)
}

func TestBuilder_UpdateQuestion(t *testing.T) {
	builder := NewBuilder(testutil.CreateTestLeadForm())

	question, err := builder.AddQuestion(models.QuestionTypeText, "Role")
	require.NoError(t, err)

	label := "Job title"
	required := true
	placeholder := "e.g. Growth Lead"

	updated, err := builder.UpdateQuestion(question.ID, QuestionPatch{
		Label:       &label,
		Required:    &required,
		Placeholder: &placeholder,
	})
	require.NoError(t, err)

	assert.Equal(t, "Job title", updated.Label)
	assert.True(t, updated.Required)
	assert.Equal(t, "e.g. Growth Lead", updated.Placeholder)
	assert.Equal(t, models.QuestionTypeText, updated.Type, "type must survive updates")
}

func TestBuilder_SetOptions(t *testing.T) {
	builder := NewBuilder(testutil.CreateTestLeadForm())

	question, err := builder.AddQuestion(models.QuestionTypeMCQSingle, "Budget range")
	require.NoError(t, err)

	updated, err := builder.SetOptions(question.ID, []string{"< $1k", "$1k-$10k", "> $10k"})
	require.NoError(t, err)
	assert.Equal(t, []string{"< $1k", "$1k-$10k", "> $10k"}, updated.Options)
}

func TestBuilder_SetOptions_RejectsNonChoiceTypes(t *testing.T) {
	builder := NewBuilder(testutil.CreateTestLeadForm())

	tests := []struct {
		name         string
		questionType models.QuestionType
	}{
		{name: "text", questionType: models.QuestionTypeText},
		{name: "email", questionType: models.QuestionTypeEmail},
		{name: "boolean", questionType: models.QuestionTypeBoolean},
		{name: "rating", questionType: models.QuestionTypeRating},
		{name: "date", questionType: models.QuestionTypeDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			question, err := builder.AddQuestion(tt.questionType, "Q")
			require.NoError(t, err)

			_, err = builder.SetOptions(question.ID, []string{"A", "B"})
			assert.ErrorIs(t, err, ErrOptionsNotSupported)

			_, err = builder.AddOption(question.ID, "C")
			assert.ErrorIs(t, err, ErrOptionsNotSupported)
		})
	}
}

func TestBuilder_SetConditional(t *testing.T) {
	builder := NewBuilder(testutil.CreateTestLeadForm())

	anchor, err := builder.AddQuestion(models.QuestionTypeBoolean, "Do you run paid ads?")
	require.NoError(t, err)

	dependent, err := builder.AddQuestion(models.QuestionTypeText, "Monthly ad spend")
	require.NoError(t, err)

	updated, err := builder.SetConditional(dependent.ID, anchor.ID, true)
	require.NoError(t, err)

	require.NotNil(t, updated.ConditionalOn)
	assert.Equal(t, anchor.ID, updated.ConditionalOn.QuestionID)
	assert.Equal(t, true, updated.ConditionalOn.Value)
}

func TestBuilder_SetConditional_RejectsSelfReference(t *testing.T) {
	builder := NewBuilder(testutil.CreateTestLeadForm())

	question, err := builder.AddQuestion(models.QuestionTypeDropdown, "Industry")
	require.NoError(t, err)

	_, err = builder.SetConditional(question.ID, question.ID, "SaaS")
	assert.ErrorIs(t, err, ErrConditionalSelfReference)
}

func TestBuilder_SetConditional_RejectsMissingTarget(t *testing.T) {
	builder := NewBuilder(testutil.CreateTestLeadForm())

	question, err := builder.AddQuestion(models.QuestionTypeText, "Details")
	require.NoError(t, err)

	_, err = builder.SetConditional(question.ID, "ghost", "x")
	assert.ErrorIs(t, err, ErrConditionalTargetNotFound)
	assert.True(t, IsInvalidReference(err))
}

func TestBuilder_SetConditional_RejectsNonDiscreteTarget(t *testing.T) {
	builder := NewBuilder(testutil.CreateTestLeadForm())

	tests := []struct {
		name       string
		targetType models.QuestionType
	}{
		{name: "free text", targetType: models.QuestionTypeText},
		{name: "textarea", targetType: models.QuestionTypeTextarea},
		{name: "multi select", targetType: models.QuestionTypeMCQMulti},
		{name: "file upload", targetType: models.QuestionTypeFileUpload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := builder.AddQuestion(tt.targetType, "Target")
			require.NoError(t, err)

			dependent, err := builder.AddQuestion(models.QuestionTypeText, "Dependent")
			require.NoError(t, err)

			_, err = builder.SetConditional(dependent.ID, target.ID, "v")
			assert.ErrorIs(t, err, ErrConditionalTargetType)
		})
	}
}

func TestBuilder_SetConditional_RejectsCycle(t *testing.T) {
	builder := NewBuilder(testutil.CreateTestLeadForm())

	a, err := builder.AddQuestion(models.QuestionTypeBoolean, "A")
	require.NoError(t, err)
	b, err := builder.AddQuestion(models.QuestionTypeDropdown, "B")
	require.NoError(t, err)
	c, err := builder.AddQuestion(models.QuestionTypeMCQSingle, "C")
	require.NoError(t, err)

	_, err = builder.SetConditional(a.ID, b.ID, "yes")
	require.NoError(t, err)
	_, err = builder.SetConditional(b.ID, c.ID, "yes")
	require.NoError(t, err)

	// C -> A would close the loop A -> B -> C -> A.
	_, err = builder.SetConditional(c.ID, a.ID, true)
	assert.ErrorIs(t, err, ErrConditionalCycle)
}

func TestBuilder_ClearConditional(t *testing.T) {
	builder := NewBuilder(testutil.CreateTestLeadForm())

	anchor, err := builder.AddQuestion(models.QuestionTypeBoolean, "Anchor")
	require.NoError(t, err)
	dependent, err := builder.AddQuestion(models.QuestionTypeText, "Dependent")
	require.NoError(t, err)

	_, err = builder.SetConditional(dependent.ID, anchor.ID, true)
	require.NoError(t, err)

	cleared, err := builder.ClearConditional(dependent.ID)
	require.NoError(t, err)
	assert.Nil(t, cleared.ConditionalOn)
}

func TestBuilder_RemoveQuestion_CascadeClearsConditionals(t *testing.T) {
	builder := NewBuilder(testutil.CreateTestLeadForm())

	anchor, err := builder.AddQuestion(models.QuestionTypeBoolean, "Do you run paid ads?")
	require.NoError(t, err)

	first, err := builder.AddQuestion(models.QuestionTypeText, "Ad spend")
	require.NoError(t, err)
	second, err := builder.AddQuestion(models.QuestionTypeText, "Primary channel")
	require.NoError(t, err)

	_, err = builder.SetConditional(first.ID, anchor.ID, true)
	require.NoError(t, err)
	_, err = builder.SetConditional(second.ID, anchor.ID, true)
	require.NoError(t, err)

	builder.RemoveQuestion(anchor.ID)

	assert.Len(t, builder.Form().Questions, 2)
	assert.Nil(t, first.ConditionalOn, "rule pointing at a removed question must be cleared")
	assert.Nil(t, second.ConditionalOn, "rule pointing at a removed question must be cleared")
}

func TestBuilder_RemoveQuestion_AbsentIsNoOp(t *testing.T) {
	builder := NewBuilder(testutil.CreateTestLeadForm())

	_, err := builder.AddQuestion(models.QuestionTypeText, "Q")
	require.NoError(t, err)

	builder.RemoveQuestion("ghost")
	assert.Len(t, builder.Form().Questions, 1)
}
