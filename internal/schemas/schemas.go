package schemas

// Schemas are embedded as strings so validation has no filesystem dependency.
// They check structure only: enum coercion and id resolution happen in the
// analysis package after validation.

const suggestionSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Suggestion",
  "type": "object",
  "required": ["title", "description"],
  "properties": {
    "type": {"type": "string"},
    "action": {"type": "string"},
    "category": {"type": "string"},
    "section_id": {"type": ["string", "null"]},
    "item_id": {"type": ["string", "null"]},
    "bullet_id": {"type": ["string", "null"]},
    "field": {"type": ["string", "null"]},
    "title": {"type": "string", "minLength": 1},
    "description": {"type": "string", "minLength": 1},
    "current_text": {"type": ["string", "null"]},
    "suggested_text": {"type": ["string", "null"]},
    "impact": {"type": ["string", "null"]},
    "score_impact": {"type": ["integer", "null"]}
  }
}`

const keywordSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Keyword",
  "type": "object",
  "required": ["text"],
  "properties": {
    "text": {"type": "string", "minLength": 1},
    "category": {"type": ["string", "null"]},
    "present": {"type": ["boolean", "null"]}
  }
}`
