// Package schemas provides JSON Schema validation for serialized parse
// results. Schemas are embedded so validation works regardless of the
// working directory the CLI runs from.
package schemas

// ResumeSchema is the JSON Schema for a serialized Resume.
const ResumeSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Resume",
  "type": "object",
  "required": ["full_name", "sections", "skills"],
  "properties": {
    "full_name": {"type": "string", "minLength": 1},
    "email": {"type": "string"},
    "phone": {"type": "string"},
    "sections": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["kind", "name", "content"],
        "properties": {
          "kind": {
            "type": "string",
            "enum": ["Summary", "Experience", "Skills", "Education", "Other"]
          },
          "name": {"type": "string", "minLength": 1},
          "content": {"type": "string"},
          "original_name": {"type": "string"}
        }
      }
    },
    "skills": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    },
    "years_of_experience": {"type": "integer", "minimum": 0},
    "experience_calculation_method": {
      "type": "string",
      "enum": ["from_summary", "from_dates"]
    }
  }
}`

// JobDescriptionSchema is the JSON Schema for a serialized JobDescription.
const JobDescriptionSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "JobDescription",
  "type": "object",
  "required": ["title", "company", "required_skills", "nice_to_have_skills", "years_of_experience", "keywords"],
  "properties": {
    "title": {"type": "string", "minLength": 1},
    "company": {"type": "string", "minLength": 1},
    "required_skills": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    },
    "nice_to_have_skills": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    },
    "years_of_experience": {"type": "integer", "minimum": 0},
    "responsibilities": {
      "type": "array",
      "items": {"type": "string"}
    },
    "qualifications": {
      "type": "array",
      "items": {"type": "string"}
    },
    "keywords": {
      "type": "array",
      "items": {"type": "string", "minLength": 3, "maxLength": 29}
    }
  }
}`
